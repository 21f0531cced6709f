package httpserver

import (
	"fmt"
)

// Run maps all handlers and starts serving on the configured port. It blocks
// until the underlying listener stops.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("failed to map handlers: %w", err)
	}

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
