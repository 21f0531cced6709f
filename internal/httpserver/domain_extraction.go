package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	extractionHTTP "smb-task-tracker/internal/extraction/delivery/http"
	"smb-task-tracker/internal/middleware"
)

// setupExtractionDomain wires the extraction endpoints onto the API group.
func (srv HTTPServer) setupExtractionDomain(ctx context.Context, api *gin.RouterGroup) error {
	mw := middleware.New(srv.l, middleware.Config{
		RateLimitPerMin: srv.rateLimitPerMin,
	})

	extractionHTTP.MapExtractionRoutes(srv.l, api, mw, srv.extractionUC)

	srv.l.Infof(ctx, "Extraction domain registered")
	return nil
}
