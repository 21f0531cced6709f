package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smb-task-tracker/internal/extraction"
	"smb-task-tracker/pkg/response"
)

// mapError translates extraction domain errors into HTTP statuses.
// 400: caller input invalid. 501: required capability not configured.
// Everything else is an internal failure.
func mapError(err error) int {
	switch {
	case errors.Is(err, extraction.ErrEmptyInput),
		errors.Is(err, extraction.ErrContentTooShort),
		errors.Is(err, extraction.ErrNoAudio),
		errors.Is(err, extraction.ErrAudioTooLarge),
		errors.Is(err, extraction.ErrUnsupportedAudio):
		return http.StatusBadRequest

	case errors.Is(err, extraction.ErrTranscriberNotConfigured):
		return http.StatusNotImplemented

	default:
		return http.StatusInternalServerError
	}
}

// respondError sends the uniform failure envelope for a domain error.
// Wrapped detail beyond the sentinel message goes to the details field.
func (h *handler) respondError(c *gin.Context, err error) {
	msg := err.Error()
	details := ""

	for _, sentinel := range []error{
		extraction.ErrTranscriptionFailed,
		extraction.ErrGenerationFailed,
		extraction.ErrUnparseableResponse,
	} {
		if errors.Is(err, sentinel) {
			msg = sentinel.Error()
			details = err.Error()
			break
		}
	}

	response.WithStatus(c, mapError(err), msg, details)
}
