package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JaunMarin423/CrudUsers/internal/utils"
)

// Errors is the single place a thrown error becomes an HTTP response.
// Handlers and middlewares push errors with c.Error; after the chain runs the
// last error is normalized and written. The raw error chain is exposed as
// "stack" only outside production.
func Errors(logger *slog.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		appErr := utils.Normalize(err)

		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
		}

		if c.Writer.Written() {
			return
		}

		body := utils.ErrorResponse{
			Success: false,
			Error:   appErr.Message,
			Errors:  appErr.Fields,
		}
		if !production {
			body.Stack = err.Error()
		}
		c.JSON(appErr.Status, body)
	}
}

// NotFoundRoute handles requests that match no route.
func NotFoundRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse{
			Success: false,
			Error:   "No se pudo encontrar " + c.Request.URL.Path + " en este servidor",
		})
	}
}
