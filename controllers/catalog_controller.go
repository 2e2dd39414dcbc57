package controllers

import (
	"net/http"

	"go-postgres-optics/config"
	"go-postgres-optics/service"
	"go-postgres-optics/utils"

	"github.com/gin-gonic/gin"
)

var catalog *service.Catalog

// InitCatalog wires the dropdown cache to the connected database.
// Must run after config.ConnectDB.
func InitCatalog() {
	catalog = service.NewCatalog(service.NewStockSource(config.DB))
}

func ListFrames(c *gin.Context) {
	frames, err := catalog.ListFrames()
	if err != nil {
		respondDBError(c, "Failed to load frames", err)
		return
	}
	utils.Success(c, "Frames loaded", frames)
}

func ListTypes(c *gin.Context) {
	frame := c.Query("frame")
	if frame == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "frame is required"})
		return
	}

	types, err := catalog.ListTypes(frame)
	if err != nil {
		respondDBError(c, "Failed to load types", err)
		return
	}
	utils.Success(c, "Types loaded", types)
}

// RefreshCatalog backs the "Refresh Data" action on the intake form.
func RefreshCatalog(c *gin.Context) {
	catalog.Invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Catalog refreshed"})
}
