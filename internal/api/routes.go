package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Building Plan Generation & Refinement ---
	planGroup := router.Group("/plan")
	{
		planGroup.POST("/generate", h.GeneratePlan) // Generate a new plan from land dimensions and style
		planGroup.POST("/refine", h.RefinePlan)     // One chat-style refinement turn over an existing plan
	}

	// --- Discovery ---
	router.POST("/shops/nearby", h.FindNearbyShops)
	router.POST("/property/search", h.SearchProperty)

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
