package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridepulse/ridepulse/internal/domain/dto"
	"github.com/ridepulse/ridepulse/internal/logger"
)

// ErrorHandler turns errors attached to the Gin context (via c.Error) into
// a single JSON error envelope, when the handler itself did not already
// write a response. Handlers that respond explicitly are left alone.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError is a handler-side shortcut: log the error, respond with the
// JSON error envelope at the given status, and abort the chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	logger.L().Error().Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg(message)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
