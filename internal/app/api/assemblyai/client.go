package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nuworldagency/SpeechScribe/internal/app/model"
)

const defaultBaseURL = "https://api.assemblyai.com"

// ErrTranscriptNotFound is returned when the provider does not know the
// requested transcript id.
var ErrTranscriptNotFound = errors.New("transcript not found")

// UploadError is a provider ingestion failure. StatusCode is zero when the
// failure happened before an HTTP status was received.
type UploadError struct {
	StatusCode int
	Message    string
}

func (e *UploadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upload failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upload failed: %s", e.Message)
}

// Config holds client configuration. OnRetry, when set, is invoked once per
// upload attempt beyond the first.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	OnRetry    func()
}

// Client talks to the AssemblyAI v2 REST API. It covers file ingestion,
// transcript creation and status reads; the provider performs the actual
// speech recognition asynchronously.
type Client struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

// NewClient creates an AssemblyAI client with config defaults applied.
func NewClient(config Config, logger *slog.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 120 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = time.Second
	}
	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

// Upload sends raw audio bytes to the provider ingestion endpoint and
// returns the opaque upload handle. A single attempt; see UploadWithRetry
// for the retrying variant used by the transcribe flow.
func (c *Client) Upload(ctx context.Context, data []byte, fileName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v2/upload", bytes.NewReader(data))
	if err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	req.Header.Set("Authorization", c.config.APIKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &UploadError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var upload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&upload); err != nil {
		return "", &UploadError{Message: fmt.Sprintf("failed to parse upload response: %v", err)}
	}
	if upload.UploadURL == "" {
		return "", &UploadError{Message: "no upload URL received"}
	}

	c.logger.Info("uploaded audio to provider", "file_name", fileName, "size", len(data))
	return upload.UploadURL, nil
}

// UploadWithRetry retries Upload with a fixed delay between attempts and
// surfaces the last error once attempts are exhausted.
func (c *Client) UploadWithRetry(ctx context.Context, data []byte, fileName string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 1 && c.config.OnRetry != nil {
			c.config.OnRetry()
		}
		uploadURL, err := c.Upload(ctx, data, fileName)
		if err == nil {
			return uploadURL, nil
		}
		lastErr = err
		c.logger.Warn("upload attempt failed",
			"attempt", attempt,
			"max_retries", c.config.MaxRetries,
			"file_name", fileName,
			"error", err,
		)
		if attempt < c.config.MaxRetries {
			select {
			case <-time.After(c.config.RetryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", lastErr
}

// TranscriptOptions controls transcript creation.
type TranscriptOptions struct {
	LanguageCode      string
	SpeechModel       string
	AutoChapters      bool
	SentimentAnalysis bool
	EntityDetection   bool
	WebhookURL        string
	WebhookAuthHeader string
}

type createTranscriptRequest struct {
	AudioURL          string `json:"audio_url"`
	LanguageCode      string `json:"language_code,omitempty"`
	SpeechModel       string `json:"speech_model,omitempty"`
	AutoChapters      bool   `json:"auto_chapters,omitempty"`
	SentimentAnalysis bool   `json:"sentiment_analysis,omitempty"`
	EntityDetection   bool   `json:"entity_detection,omitempty"`
	WebhookURL        string `json:"webhook_url,omitempty"`
	WebhookAuthHeader string `json:"webhook_auth_header,omitempty"`
}

type transcriptResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}

// SubmitTranscript creates a transcription job from an upload handle and
// returns the job in its initial (queued) state.
func (c *Client) SubmitTranscript(ctx context.Context, audioURL string, opts TranscriptOptions) (*model.TranscriptionJob, error) {
	payload := createTranscriptRequest{
		AudioURL:          audioURL,
		LanguageCode:      opts.LanguageCode,
		SpeechModel:       opts.SpeechModel,
		AutoChapters:      opts.AutoChapters,
		SentimentAnalysis: opts.SentimentAnalysis,
		EntityDetection:   opts.EntityDetection,
		WebhookURL:        opts.WebhookURL,
		WebhookAuthHeader: opts.WebhookAuthHeader,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transcript request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v2/transcript", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript request: %w", err)
	}
	req.Header.Set("Authorization", c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript creation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("transcript creation failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var transcript transcriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&transcript); err != nil {
		return nil, fmt.Errorf("failed to parse transcript response: %w", err)
	}
	if transcript.ID == "" {
		return nil, fmt.Errorf("transcript creation returned no id")
	}

	c.logger.Info("transcription job created", "transcript_id", transcript.ID, "status", transcript.Status)
	return mapTranscript(&transcript), nil
}

// GetTranscript reads the current job state from the provider. The mapping
// is pure: a job the provider reports as completed or error maps to the same
// terminal status on every call.
func (c *Client) GetTranscript(ctx context.Context, id string) (*model.TranscriptionJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/v2/transcript/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create status request: %w", err)
	}
	req.Header.Set("Authorization", c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrTranscriptNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("status request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var transcript transcriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&transcript); err != nil {
		return nil, fmt.Errorf("failed to parse status response: %w", err)
	}
	return mapTranscript(&transcript), nil
}

// mapTranscript converts the provider status vocabulary onto the four-state
// job enum. Unrecognized non-terminal statuses collapse into processing.
func mapTranscript(t *transcriptResponse) *model.TranscriptionJob {
	job := &model.TranscriptionJob{ID: t.ID}

	// A provider-reported error wins regardless of the status field.
	if t.Error != "" {
		job.Status = model.StatusError
		job.Error = t.Error
		return job
	}

	switch t.Status {
	case "error":
		job.Status = model.StatusError
	case "completed":
		job.Status = model.StatusCompleted
		job.Text = t.Text
	case "queued":
		job.Status = model.StatusQueued
		job.Progress = 25
	default:
		job.Status = model.StatusProcessing
		job.Progress = 50
	}
	return job
}
