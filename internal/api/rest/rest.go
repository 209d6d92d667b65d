package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes (public read access)
	v1 := router.Group("/api/v1")
	{
		// Collection endpoints
		v1.GET("/stats", handler.GetStats)
		v1.GET("/cards", handler.GetCardCollection)
		v1.GET("/cards/:id", handler.GetCard)

		// User endpoints
		v1.GET("/users", handler.ListUsers)
		v1.GET("/users/:address", handler.GetUser)
	}
}
