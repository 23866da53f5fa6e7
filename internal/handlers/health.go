package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck is the liveness probe.
func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"message":   "FarmRide API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
