package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the given payload.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// BadRequest sends 400 for caller-fault input errors.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Fail(err.Error(), ""))
}

// Internal sends 500 for pipeline/extraction failures.
func Internal(c *gin.Context, msg, details string) {
	c.JSON(http.StatusInternalServerError, Fail(msg, details))
}

// NotImplemented sends 501 when a required external capability is not configured.
func NotImplemented(c *gin.Context, msg string) {
	c.JSON(http.StatusNotImplemented, Fail(msg, ""))
}

// TooManyRequests sends 429 and aborts the request.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Fail("rate limit exceeded", ""))
}

// WithStatus sends an arbitrary failure status.
func WithStatus(c *gin.Context, status int, msg, details string) {
	c.JSON(status, Fail(msg, details))
}
