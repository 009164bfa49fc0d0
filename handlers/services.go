package handlers

import (
	"net/http"

	"barberbook/database/repository"
	"barberbook/services/catalog"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListServicesHandler handles GET /api/services.
func ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.Services()})
}

// GetServiceHandler handles GET /api/services/:id.
func GetServiceHandler(c *gin.Context) {
	id := c.Param("id")
	svc, ok := catalog.GetServiceByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "unknown service",
			"details": "no service with id " + id,
		})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ShopConfigHandler serves the public shop info endpoint.
type ShopConfigHandler struct {
	Shop repository.ShopConfigRepository
}

// GetShopConfigHandler handles GET /api/config.
func (h *ShopConfigHandler) GetShopConfigHandler(c *gin.Context) {
	logger := utils.GetLogger()
	cfg, err := h.Shop.Get()
	if err != nil {
		logger.Error("GetShopConfigHandler: failed to load shop config", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
