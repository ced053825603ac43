package services

import (
	"context"
	"errors"
	"log/slog"

	apierrors "github.com/nuworldagency/SpeechScribe/internal/api/errors"
	"github.com/nuworldagency/SpeechScribe/internal/api/v1/dto"
	"github.com/nuworldagency/SpeechScribe/internal/app/api/assemblyai"
	"github.com/nuworldagency/SpeechScribe/internal/app/metrics"
	"github.com/nuworldagency/SpeechScribe/internal/app/model"
	"github.com/nuworldagency/SpeechScribe/internal/app/storage"
	"github.com/nuworldagency/SpeechScribe/internal/app/util/files"
)

// TranscriptionConfig carries the per-job provider options.
type TranscriptionConfig struct {
	LanguageCode      string
	WebhookURL        string
	WebhookAuthHeader string
}

// TranscriptionServiceImpl implements TranscriptionService against the
// AssemblyAI client and the OpenAI summarizer.
type TranscriptionServiceImpl struct {
	provider   ProviderClient
	summarizer Summarizer
	archive    storage.AudioArchive
	config     TranscriptionConfig
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewTranscriptionService creates the transcription service. archive may be
// nil when object storage is not configured.
func NewTranscriptionService(
	provider ProviderClient,
	summarizer Summarizer,
	archive storage.AudioArchive,
	config TranscriptionConfig,
	m *metrics.Metrics,
	logger *slog.Logger,
) TranscriptionService {
	if config.LanguageCode == "" {
		config.LanguageCode = "en"
	}
	return &TranscriptionServiceImpl{
		provider:   provider,
		summarizer: summarizer,
		archive:    archive,
		config:     config,
		metrics:    m,
		logger:     logger,
	}
}

// Transcribe validates the upload, pushes the bytes to the provider and
// creates the transcription job. Upload happens strictly before job
// creation; a rejected upload never reaches the provider.
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, file UploadedFile) (*dto.TranscribeResponse, error) {
	if err := files.ValidateUpload(files.UploadFile{
		Name:        file.Name,
		ContentType: file.ContentType,
		Size:        int64(len(file.Data)),
	}); err != nil {
		s.metrics.UploadsRejected.Inc()
		return nil, apierrors.NewValidationError(err.Error(), nil)
	}

	uploadURL, err := s.provider.UploadWithRetry(ctx, file.Data, file.Name)
	if err != nil {
		var uploadErr *assemblyai.UploadError
		if errors.As(err, &uploadErr) {
			return nil, apierrors.NewUploadError("Failed to upload file after multiple attempts")
		}
		return nil, apierrors.NewInternalError(err.Error())
	}

	job, err := s.provider.SubmitTranscript(ctx, uploadURL, assemblyai.TranscriptOptions{
		LanguageCode:      s.config.LanguageCode,
		AutoChapters:      true,
		SentimentAnalysis: true,
		EntityDetection:   true,
		WebhookURL:        s.config.WebhookURL,
		WebhookAuthHeader: s.config.WebhookAuthHeader,
	})
	if err != nil {
		return nil, apierrors.NewInternalError("An error occurred during transcription")
	}
	s.metrics.JobsSubmitted.Inc()

	if s.archive != nil {
		// Archiving is best-effort; a storage failure must not fail the job.
		go func(data []byte, name, contentType string) {
			key, err := s.archive.Store(context.Background(), data, name, contentType)
			if err != nil {
				s.logger.Warn("failed to archive upload", "file_name", name, "error", err)
				return
			}
			s.logger.Info("archived upload", "file_name", name, "key", key)
		}(file.Data, file.Name, file.ContentType)
	}

	return &dto.TranscribeResponse{
		TranscriptID: job.ID,
		Status:       string(job.Status),
	}, nil
}

// GetStatus re-reads the job from the provider and, for completed jobs,
// attaches the language-model analysis. The status mapping never moves a
// terminal job back to processing.
func (s *TranscriptionServiceImpl) GetStatus(ctx context.Context, transcriptID string) (*dto.TranscriptionStatusResponse, error) {
	job, err := s.provider.GetTranscript(ctx, transcriptID)
	if err != nil {
		if errors.Is(err, assemblyai.ErrTranscriptNotFound) {
			return nil, apierrors.NewNotFoundError("Transcription")
		}
		return nil, apierrors.NewInternalError("Failed to fetch transcription status")
	}
	s.metrics.JobStatusReads.WithLabelValues(string(job.Status)).Inc()

	if job.Status != model.StatusCompleted {
		return dto.FromJob(job), nil
	}
	if job.Text == "" {
		return nil, apierrors.NewInternalError("No transcription text received")
	}

	analysis, err := s.summarizer.Summarize(ctx, job.Text)
	if err != nil {
		s.metrics.Summarizations.WithLabelValues("error").Inc()
		return nil, apierrors.NewSummarizationError(err.Error())
	}
	s.metrics.Summarizations.WithLabelValues("success").Inc()

	job.Summary = analysis.Summary
	job.Sentiment = analysis.Sentiment
	job.KeyPoints = analysis.KeyPoints
	return dto.FromJob(job), nil
}
