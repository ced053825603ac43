package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nuworldagency/SpeechScribe/internal/api/errors"
	"github.com/nuworldagency/SpeechScribe/internal/api/middleware"
	"github.com/nuworldagency/SpeechScribe/internal/api/v1/services"
)

// TranscriptionHandler handles the transcribe endpoints.
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler.
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{service: service}
}

// Transcribe handles POST /transcribe.
// Accepts a multipart audio upload, forwards it to the provider and returns
// the created job id and its initial status.
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to process file"))
		return
	}

	response, err := h.service.Transcribe(c.Request.Context(), services.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetStatus handles GET /transcribe?transcriptionId=<id>.
// Returns the current job state; completed jobs include transcript text,
// summary, sentiment and key points.
func (h *TranscriptionHandler) GetStatus(c *gin.Context) {
	transcriptID := c.Query("transcriptionId")
	if transcriptID == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Missing transcriptionId parameter"))
		return
	}

	response, err := h.service.GetStatus(c.Request.Context(), transcriptID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
