package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nuworldagency/SpeechScribe/internal/api/errors"
	"github.com/nuworldagency/SpeechScribe/internal/api/middleware"
	"github.com/nuworldagency/SpeechScribe/internal/api/v1/dto"
)

// WebhookHandler receives provider status callbacks.
type WebhookHandler struct {
	authToken string
	logger    *slog.Logger
}

// NewWebhookHandler creates the webhook handler with the shared secret the
// provider was given at job creation.
func NewWebhookHandler(authToken string, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{authToken: authToken, logger: logger}
}

// HandleAssemblyAI handles POST /webhook/assemblyai.
// The shared-secret header must match exactly; mismatches are rejected with
// 401 before the payload is read. Valid callbacks are logged per status and
// always acknowledged with the job id and status.
func (h *WebhookHandler) HandleAssemblyAI(c *gin.Context) {
	if c.GetHeader("webhook_auth_header") != h.authToken {
		h.logger.Error("invalid webhook auth header received")
		middleware.HandleError(c, errors.NewUnauthorizedError("Unauthorized webhook request"))
		return
	}

	var payload dto.WebhookPayload
	if err := middleware.BindJSON(c, &payload, "Failed to process webhook"); err != nil {
		middleware.HandleError(c, err)
		return
	}

	switch payload.Status {
	case "completed":
		h.logger.Info("transcription completed", "transcript_id", payload.TranscriptID)
	case "error":
		h.logger.Error("transcription failed",
			"transcript_id", payload.TranscriptID,
			"error", payload.Error,
		)
	case "processing":
		h.logger.Info("transcription processing", "transcript_id", payload.TranscriptID)
	default:
		h.logger.Info("transcription status update",
			"transcript_id", payload.TranscriptID,
			"status", payload.Status,
		)
	}

	c.JSON(http.StatusOK, dto.WebhookAck{
		Success:      true,
		TranscriptID: payload.TranscriptID,
		Status:       payload.Status,
	})
}
