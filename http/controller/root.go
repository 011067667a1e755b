package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/advikbond/real-estate/utils"
)

// ServiceInfo is the banner served at the API root.
func (ctrl *Controller) ServiceInfo(c *gin.Context) {
	utils.JSON200(c, gin.H{
		"message": "Real Estate Backend API is running!",
		"endpoints": gin.H{
			"health":        "/api/health",
			"projects":      "/api/projects",
			"createProject": "POST /api/projects",
		},
	})
}

func (ctrl *Controller) HealthCheck(c *gin.Context) {
	storage := "not configured"
	if ctrl.Config.EnvConfig.Minio.Endpoint != "" {
		storage = "configured"
	}

	utils.JSON200(c, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"storage":   storage,
	})
}
