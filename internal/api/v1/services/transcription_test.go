package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/nuworldagency/SpeechScribe/internal/api/errors"
	"github.com/nuworldagency/SpeechScribe/internal/app/api/assemblyai"
	"github.com/nuworldagency/SpeechScribe/internal/app/metrics"
	"github.com/nuworldagency/SpeechScribe/internal/app/model"
)

type fakeProvider struct {
	uploadURL   string
	uploadErr   error
	uploadCalls int
	submitJob   *model.TranscriptionJob
	submitErr   error
	submitCalls int
	submitOpts  assemblyai.TranscriptOptions
	getJob      *model.TranscriptionJob
	getErr      error
}

func (f *fakeProvider) UploadWithRetry(_ context.Context, _ []byte, _ string) (string, error) {
	f.uploadCalls++
	return f.uploadURL, f.uploadErr
}

func (f *fakeProvider) SubmitTranscript(_ context.Context, _ string, opts assemblyai.TranscriptOptions) (*model.TranscriptionJob, error) {
	f.submitCalls++
	f.submitOpts = opts
	return f.submitJob, f.submitErr
}

func (f *fakeProvider) GetTranscript(context.Context, string) (*model.TranscriptionJob, error) {
	return f.getJob, f.getErr
}

type fakeSummarizer struct {
	analysis *model.Analysis
	err      error
	calls    int
}

func (f *fakeSummarizer) Summarize(context.Context, string) (*model.Analysis, error) {
	f.calls++
	return f.analysis, f.err
}

func newTestService(provider *fakeProvider, summarizer *fakeSummarizer) TranscriptionService {
	return NewTranscriptionService(
		provider,
		summarizer,
		nil,
		TranscriptionConfig{
			WebhookURL:        "https://app.example/webhook/assemblyai",
			WebhookAuthHeader: "secret",
		},
		metrics.New(prometheus.NewRegistry()),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestTranscribe(t *testing.T) {
	t.Run("submits validated upload with analysis options", func(t *testing.T) {
		provider := &fakeProvider{
			uploadURL: "https://cdn.example/audio/abc",
			submitJob: &model.TranscriptionJob{ID: "tr_1", Status: model.StatusQueued},
		}
		svc := newTestService(provider, &fakeSummarizer{})

		resp, err := svc.Transcribe(context.Background(), UploadedFile{
			Name:        "test.mp3",
			ContentType: "audio/mpeg",
			Data:        make([]byte, 5*1024*1024),
		})
		require.NoError(t, err)
		assert.Equal(t, "tr_1", resp.TranscriptID)
		assert.Contains(t, []string{"queued", "processing"}, resp.Status)

		assert.Equal(t, "en", provider.submitOpts.LanguageCode)
		assert.True(t, provider.submitOpts.AutoChapters)
		assert.True(t, provider.submitOpts.SentimentAnalysis)
		assert.True(t, provider.submitOpts.EntityDetection)
		assert.Equal(t, "https://app.example/webhook/assemblyai", provider.submitOpts.WebhookURL)
	})

	t.Run("rejected file never reaches the provider", func(t *testing.T) {
		provider := &fakeProvider{}
		svc := newTestService(provider, &fakeSummarizer{})

		_, err := svc.Transcribe(context.Background(), UploadedFile{
			Name:        "slides.pdf",
			ContentType: "application/pdf",
			Data:        []byte("not audio"),
		})
		require.Error(t, err)

		apiErr, ok := err.(*apierrors.APIError)
		require.True(t, ok)
		assert.Equal(t, apierrors.KindValidation, apiErr.Kind)
		assert.NotEmpty(t, apiErr.Message)
		assert.Zero(t, provider.uploadCalls)
		assert.Zero(t, provider.submitCalls)
	})

	t.Run("oversize file rejected regardless of type", func(t *testing.T) {
		provider := &fakeProvider{}
		svc := newTestService(provider, &fakeSummarizer{})

		_, err := svc.Transcribe(context.Background(), UploadedFile{
			Name:        "long.mp3",
			ContentType: "audio/mpeg",
			Data:        make([]byte, 81*1024*1024),
		})
		require.Error(t, err)
		assert.Zero(t, provider.uploadCalls)
	})

	t.Run("exhausted upload surfaces as upload error without job creation", func(t *testing.T) {
		provider := &fakeProvider{uploadErr: &assemblyai.UploadError{StatusCode: 502, Message: "bad gateway"}}
		svc := newTestService(provider, &fakeSummarizer{})

		_, err := svc.Transcribe(context.Background(), UploadedFile{
			Name:        "test.mp3",
			ContentType: "audio/mpeg",
			Data:        []byte("audio"),
		})
		require.Error(t, err)

		apiErr, ok := err.(*apierrors.APIError)
		require.True(t, ok)
		assert.Equal(t, apierrors.KindUpload, apiErr.Kind)
		assert.Zero(t, provider.submitCalls)
	})
}

func TestGetStatus(t *testing.T) {
	t.Run("processing job returns without summarization", func(t *testing.T) {
		provider := &fakeProvider{
			getJob: &model.TranscriptionJob{ID: "tr_1", Status: model.StatusProcessing, Progress: 50},
		}
		summarizer := &fakeSummarizer{}
		svc := newTestService(provider, summarizer)

		resp, err := svc.GetStatus(context.Background(), "tr_1")
		require.NoError(t, err)
		assert.Equal(t, "processing", resp.Status)
		assert.Equal(t, 50, resp.Progress)
		assert.Zero(t, summarizer.calls)
	})

	t.Run("completed job is summarized", func(t *testing.T) {
		provider := &fakeProvider{
			getJob: &model.TranscriptionJob{ID: "tr_1", Status: model.StatusCompleted, Text: "full transcript"},
		}
		summarizer := &fakeSummarizer{analysis: &model.Analysis{
			Summary:   "short version",
			Sentiment: "positive",
			KeyPoints: []string{"a", "b"},
		}}
		svc := newTestService(provider, summarizer)

		resp, err := svc.GetStatus(context.Background(), "tr_1")
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, "full transcript", resp.Text)
		assert.Equal(t, "short version", resp.Summary)
		assert.Equal(t, "positive", resp.Sentiment)
		assert.Equal(t, []string{"a", "b"}, resp.KeyPoints)
	})

	t.Run("errored job carries the provider message", func(t *testing.T) {
		provider := &fakeProvider{
			getJob: &model.TranscriptionJob{ID: "tr_1", Status: model.StatusError, Error: "audio unreadable"},
		}
		summarizer := &fakeSummarizer{}
		svc := newTestService(provider, summarizer)

		resp, err := svc.GetStatus(context.Background(), "tr_1")
		require.NoError(t, err)
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, "audio unreadable", resp.Error)
		assert.Zero(t, summarizer.calls)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		provider := &fakeProvider{getErr: assemblyai.ErrTranscriptNotFound}
		svc := newTestService(provider, &fakeSummarizer{})

		_, err := svc.GetStatus(context.Background(), "tr_missing")
		apiErr, ok := err.(*apierrors.APIError)
		require.True(t, ok)
		assert.Equal(t, apierrors.KindNotFound, apiErr.Kind)
	})

	t.Run("summarizer failure maps to summarization error", func(t *testing.T) {
		provider := &fakeProvider{
			getJob: &model.TranscriptionJob{ID: "tr_1", Status: model.StatusCompleted, Text: "text"},
		}
		svc := newTestService(provider, &fakeSummarizer{err: assert.AnError})

		_, err := svc.GetStatus(context.Background(), "tr_1")
		apiErr, ok := err.(*apierrors.APIError)
		require.True(t, ok)
		assert.Equal(t, apierrors.KindSummarization, apiErr.Kind)
	})
}
