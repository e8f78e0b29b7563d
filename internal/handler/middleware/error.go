package middleware

import (
	"log/slog"
	"net/http"

	"car-rental/internal/handler/httperr"
	"car-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			if resp, ok := err.Meta.(httperr.Response); ok && resp.Status >= http.StatusInternalServerError {
				logServerError(c, err.Err)
			}
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public errors carry their response in Meta
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

const stackLinesLogged = 10

func logServerError(c *gin.Context, err error) {
	slog.Error("request failed",
		"path", c.Request.URL.Path,
		"request_id", GetRequestID(c),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, stackLinesLogged),
	)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
