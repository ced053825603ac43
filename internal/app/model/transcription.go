package model

// TranscriptionStatus is the lifecycle state of a transcription job.
// Transitions: queued -> processing -> {completed, error}. The terminal
// states never transition back to processing.
type TranscriptionStatus string

const (
	StatusQueued     TranscriptionStatus = "queued"
	StatusProcessing TranscriptionStatus = "processing"
	StatusCompleted  TranscriptionStatus = "completed"
	StatusError      TranscriptionStatus = "error"
)

// IsTerminal reports whether no further status changes are possible.
func (s TranscriptionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusError
}

// TranscriptionJob is the service's view of a provider transcription job.
// It is always recomputed from provider responses; there is no local write
// path and no local persistence.
type TranscriptionJob struct {
	ID        string              `json:"id"`
	Status    TranscriptionStatus `json:"status"`
	Text      string              `json:"text,omitempty"`
	Summary   string              `json:"summary,omitempty"`
	Sentiment string              `json:"sentiment,omitempty"`
	KeyPoints []string            `json:"keyPoints,omitempty"`
	Error     string              `json:"error,omitempty"`
	// Progress is a coarse estimate (25 while queued, 50 while processing),
	// not a true percentage.
	Progress int `json:"progress,omitempty"`
}

// Analysis holds the fields produced by the summarization adapter.
type Analysis struct {
	Summary   string
	Sentiment string
	KeyPoints []string
}
