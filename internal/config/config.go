package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
}

// AssemblyAIConfig holds speech-to-text provider settings.
type AssemblyAIConfig struct {
	APIKey           string
	BaseURL          string
	WebhookAuthToken string
}

// OpenAIConfig holds language-model settings.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// RedisConfig holds the subscription store connection. An empty Addr selects
// the in-memory store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MinioConfig holds the audio archive connection. An empty Endpoint disables
// archiving.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Config is the full process configuration, assembled once at start and
// passed down explicitly; no package-level client singletons.
type Config struct {
	Server     ServerConfig
	AssemblyAI AssemblyAIConfig
	OpenAI     OpenAIConfig
	Redis      RedisConfig
	Minio      MinioConfig
	AppURL     string
	AuthSecret string
}

// LoadEnv loads a .env file if one exists near the working directory.
// Missing files are fine; variables may be set system-wide.
func LoadEnv() error {
	for _, envPath := range []string{".env", ".env.local", "../.env"} {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}
	return nil
}

// Load reads configuration from the environment. It fails fast when keys
// the serving path cannot run without are missing.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			Environment:  getEnv("ENVIRONMENT", "development"),
		},
		AssemblyAI: AssemblyAIConfig{
			APIKey:           strings.TrimSpace(os.Getenv("ASSEMBLYAI_API_KEY")),
			BaseURL:          getEnv("ASSEMBLYAI_BASE_URL", "https://api.assemblyai.com"),
			WebhookAuthToken: strings.TrimSpace(os.Getenv("ASSEMBLYAI_WEBHOOK_AUTH_TOKEN")),
		},
		OpenAI: OpenAIConfig{
			APIKey: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
			Model:  getEnv("OPENAI_MODEL", "gpt-4"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getEnv("MINIO_BUCKET", "speechscribe-audio"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
		AppURL:     strings.TrimRight(os.Getenv("APP_URL"), "/"),
		AuthSecret: os.Getenv("AUTH_SECRET"),
	}

	if cfg.AssemblyAI.APIKey == "" {
		return nil, fmt.Errorf("ASSEMBLYAI_API_KEY is not set")
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if cfg.OpenAI.APIKey != "" && !strings.HasPrefix(cfg.OpenAI.APIKey, "sk-") {
		return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
	}
	if cfg.AuthSecret == "" {
		return nil, fmt.Errorf("AUTH_SECRET is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
