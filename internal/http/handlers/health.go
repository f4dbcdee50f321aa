package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JaunMarin423/CrudUsers/internal/config"
)

// Health reports liveness plus the running environment and version.
func Health(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "success",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": env,
			"version":     config.Version,
		})
	}
}
