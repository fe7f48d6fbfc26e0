package handlers

import (
	"net/http"

	"blueriver/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency health snapshot.
func HealthHandler(status func() utils.HealthStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := status()
		if !s.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "dependencies": s})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Blue River", "dependencies": s})
	}
}
