package http

import (
	"github.com/gin-gonic/gin"

	"smb-task-tracker/internal/extraction"
	"smb-task-tracker/pkg/log"
)

// Handler is the public interface for the extraction HTTP delivery layer.
type Handler interface {
	Breakdown(c *gin.Context)
	Voicemail(c *gin.Context)
	Content(c *gin.Context)
	Audio(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc extraction.UseCase
}

// New creates a new HTTP handler for the extraction domain.
func New(l log.Logger, uc extraction.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
