package dto

// WebhookPayload is the provider's status callback body.
type WebhookPayload struct {
	TranscriptID string `json:"transcript_id"`
	Status       string `json:"status"`
	Text         string `json:"text,omitempty"`
	Error        string `json:"error,omitempty"`
	AudioURL     string `json:"audio_url,omitempty"`
}

// WebhookAck acknowledges a callback. It echoes the job id and status
// regardless of which status branch was taken.
type WebhookAck struct {
	Success      bool   `json:"success"`
	TranscriptID string `json:"transcriptId"`
	Status       string `json:"status"`
}
