package middleware

import (
	"homescout-listings/internal/errors"
	"homescout-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler catches errors attached by handlers and renders the
// standardized error envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			appErr := errors.MapError(err)

			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, error=%s",
				c.Request.URL.Path,
				c.Request.Method,
				c.ClientIP(),
				appErr.TechnicalMessage)

			c.JSON(appErr.HTTPStatus, gin.H{
				"error": gin.H{
					"message": appErr.UserMessage,
					"code":    appErr.Code,
				},
			})
			return
		}
	}
}
