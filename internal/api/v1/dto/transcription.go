package dto

import "github.com/nuworldagency/SpeechScribe/internal/app/model"

// TranscribeResponse is returned after a job has been submitted.
type TranscribeResponse struct {
	TranscriptID string `json:"transcriptId"`
	Status       string `json:"status"`
}

// TranscriptionStatusResponse is the full job view returned by the status
// endpoint. Summary fields are present only once the job has completed.
type TranscriptionStatusResponse struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	Text      string   `json:"text,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	Sentiment string   `json:"sentiment,omitempty"`
	KeyPoints []string `json:"keyPoints,omitempty"`
	Error     string   `json:"error,omitempty"`
	Progress  int      `json:"progress,omitempty"`
}

// FromJob maps the domain job onto the response shape.
func FromJob(job *model.TranscriptionJob) *TranscriptionStatusResponse {
	return &TranscriptionStatusResponse{
		ID:        job.ID,
		Status:    string(job.Status),
		Text:      job.Text,
		Summary:   job.Summary,
		Sentiment: job.Sentiment,
		KeyPoints: job.KeyPoints,
		Error:     job.Error,
		Progress:  job.Progress,
	}
}
