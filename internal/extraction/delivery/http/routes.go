package http

import (
	"github.com/gin-gonic/gin"

	"smb-task-tracker/internal/extraction"
	"smb-task-tracker/internal/middleware"
	"smb-task-tracker/pkg/log"
)

// MapExtractionRoutes registers the extraction endpoints on the given group.
func MapExtractionRoutes(l log.Logger, rg *gin.RouterGroup, mw middleware.Middleware, uc extraction.UseCase) {
	h := New(l, uc)

	g := rg.Group("/extract")
	g.Use(mw.RequestID())
	g.Use(mw.RateLimit())

	g.POST("/breakdown", h.Breakdown)
	g.POST("/voicemail", h.Voicemail)
	g.POST("/content", h.Content)
	g.POST("/audio", h.Audio)
}
