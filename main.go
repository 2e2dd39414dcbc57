package main

import (
	"os"

	"go-postgres-optics/config"
	"go-postgres-optics/controllers"
	"go-postgres-optics/models"
	"go-postgres-optics/routes"
	"go-postgres-optics/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Stock{},
		&models.Customer{},
		&models.EyePrescription{},
		&models.SpectacleNo{},
	)

	config.SeedUsers()

	// override secret from ENV
	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.Secret = []byte(s)
	}

	controllers.InitCatalog()

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "🚀 Optics API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
