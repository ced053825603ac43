package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/nuworldagency/SpeechScribe/internal/api/server"
	v1routes "github.com/nuworldagency/SpeechScribe/internal/api/v1/routes"
	"github.com/nuworldagency/SpeechScribe/internal/api/v1/services"
	"github.com/nuworldagency/SpeechScribe/internal/app/api/assemblyai"
	"github.com/nuworldagency/SpeechScribe/internal/app/api/openai/summary"
	"github.com/nuworldagency/SpeechScribe/internal/app/metrics"
	"github.com/nuworldagency/SpeechScribe/internal/app/storage"
	"github.com/nuworldagency/SpeechScribe/internal/app/subscription"
	"github.com/nuworldagency/SpeechScribe/internal/config"
)

// Cmd runs the HTTP API server.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the SpeechScribe HTTP API",
	RunE:  run,
}

func run(_ *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)

	// Provider clients are built once here and passed down; request handlers
	// never construct clients themselves.
	providerClient := assemblyai.NewClient(assemblyai.Config{
		APIKey:  cfg.AssemblyAI.APIKey,
		BaseURL: cfg.AssemblyAI.BaseURL,
		OnRetry: m.UploadRetries.Inc,
	}, logger)
	summarizer := summary.NewSummarizer(openai.NewClient(cfg.OpenAI.APIKey), cfg.OpenAI.Model)

	var store subscription.Store
	if cfg.Redis.Addr != "" {
		redisStore, err := subscription.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info("using redis subscription store", "addr", cfg.Redis.Addr)
	} else {
		store = subscription.NewMemoryStore()
		logger.Warn("REDIS_ADDR not set, subscriptions are in-memory only")
	}

	var archive storage.AudioArchive
	if cfg.Minio.Endpoint != "" {
		minioArchive, err := storage.NewMinioArchive(ctx, storage.Config{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		})
		if err != nil {
			return err
		}
		archive = minioArchive
		logger.Info("audio archive enabled", "endpoint", cfg.Minio.Endpoint, "bucket", cfg.Minio.Bucket)
	} else {
		logger.Info("MINIO_ENDPOINT not set, audio archive disabled")
	}

	webhookURL := ""
	if cfg.AppURL != "" {
		webhookURL = cfg.AppURL + "/webhook/assemblyai"
	}

	container := &v1routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(
			providerClient,
			summarizer,
			archive,
			services.TranscriptionConfig{
				LanguageCode:      "en",
				WebhookURL:        webhookURL,
				WebhookAuthHeader: cfg.AssemblyAI.WebhookAuthToken,
			},
			m,
			logger,
		),
		SubscriptionService: services.NewSubscriptionService(subscription.NewService(store)),
		WebhookAuthToken:    cfg.AssemblyAI.WebhookAuthToken,
		AuthSecret:          cfg.AuthSecret,
		Logger:              logger,
	}

	srv := server.NewServer(cfg.Server, container, m, logger)

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
