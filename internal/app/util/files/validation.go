package files

import (
	"fmt"

	"github.com/samber/lo"
)

// MaxUploadSize is the single authoritative ceiling for uploaded audio.
const MaxUploadSize = 80 * 1024 * 1024 // 80MB

// SupportedAudioTypes is the MIME allow-list for uploads.
var SupportedAudioTypes = []string{
	"audio/mp3",
	"audio/wav",
	"audio/mpeg",
	"audio/m4a",
	"audio/x-m4a",
	"audio/aac",
	"audio/ogg",
	"audio/webm",
}

// ValidationError describes why an upload was rejected. It is user
// correctable and maps to HTTP 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// UploadFile describes an upload before any network call is made.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
}

// ValidateUpload checks an upload against the MIME allow-list and size
// ceiling. It is a pure predicate with no side effects; callers must not
// touch the provider when it fails.
func ValidateUpload(f UploadFile) error {
	if f.Name == "" {
		return &ValidationError{Field: "file", Reason: "No file provided"}
	}
	if !lo.Contains(SupportedAudioTypes, f.ContentType) {
		return &ValidationError{
			Field:  "file",
			Reason: "Unsupported file type. Please upload an audio file.",
		}
	}
	if f.Size > MaxUploadSize {
		return &ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("File size exceeds %dMB limit", MaxUploadSize/(1024*1024)),
		}
	}
	return nil
}
