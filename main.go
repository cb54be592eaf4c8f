package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	middleware "go-ordering-storefront/middleware"
	routes "go-ordering-storefront/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	allowOrigin := os.Getenv("CORS_ORIGIN")
	if allowOrigin == "" {
		allowOrigin = "http://localhost:9000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Storefront frontend and uploaded images.
	router.Static("/frontend", filepath.Join(".", "frontend", "dist"))
	router.Static("/uploads", filepath.Join(".", "uploads"))
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/frontend") {
			c.File(filepath.Join(".", "frontend", "dist", "index.html"))
		} else {
			c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
		}
	})

	// Public storefront surface.
	routes.UserRoutes(router)
	routes.CatalogRoutes(router)
	routes.CartRoutes(router)
	routes.OrderRoutes(router)
	routes.TrackingRoutes(router)
	routes.UploadRoutes(router)

	// Operator surface sits behind the auth gate.
	router.Use(middleware.Authentication())
	routes.CatalogAdminRoutes(router)
	routes.OrderAdminRoutes(router)
	routes.UserAdminRoutes(router)

	router.Run(":" + port)
}
