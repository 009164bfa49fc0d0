package handlers

import (
	"net/http"

	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health. It reports the latest dependency
// snapshot from the background monitor; the process itself answering is
// the liveness signal.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"dependencies": status,
	})
}
