package services

import (
	"context"

	"github.com/nuworldagency/SpeechScribe/internal/api/v1/dto"
	"github.com/nuworldagency/SpeechScribe/internal/app/api/assemblyai"
	"github.com/nuworldagency/SpeechScribe/internal/app/model"
)

// UploadedFile is the validated-inputs view of a multipart upload.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// TranscriptionService orchestrates the upload -> transcribe -> summarize
// flow against the external providers.
type TranscriptionService interface {
	Transcribe(ctx context.Context, file UploadedFile) (*dto.TranscribeResponse, error)
	GetStatus(ctx context.Context, transcriptID string) (*dto.TranscriptionStatusResponse, error)
}

// SubscriptionService exposes plan, quota and usage operations.
type SubscriptionService interface {
	Plans(ctx context.Context) []model.Plan
	Quota(ctx context.Context, userID string) (*model.TranscriptionQuota, error)
	Create(ctx context.Context, userID, planID string) (*model.UserSubscription, error)
	AddUsage(ctx context.Context, userID string, hours float64) (*model.TranscriptionQuota, error)
}

// ProviderClient is the slice of the AssemblyAI client the transcription
// service depends on.
type ProviderClient interface {
	UploadWithRetry(ctx context.Context, data []byte, fileName string) (string, error)
	SubmitTranscript(ctx context.Context, audioURL string, opts assemblyai.TranscriptOptions) (*model.TranscriptionJob, error)
	GetTranscript(ctx context.Context, id string) (*model.TranscriptionJob, error)
}

// Summarizer produces the analysis fields for a completed transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (*model.Analysis, error)
}
