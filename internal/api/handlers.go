package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"arch_ai_server/internal/ai"
	"arch_ai_server/internal/types"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator *ai.Generator
	logger    zerolog.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator *ai.Generator, logger zerolog.Logger) *APIHandler {
	return &APIHandler{
		generator: generator,
		logger:    logger.With().Str("component", "api").Logger(),
	}
}

// --- Structs for API Requests/Responses ---

type GeneratePlanRequest struct {
	LandLength         float64 `json:"landLength" binding:"required,gt=0"`
	LandWidth          float64 `json:"landWidth" binding:"required,gt=0"`
	ArchitecturalStyle string  `json:"architecturalStyle" binding:"required"`
}

type RefinePlanRequest struct {
	CurrentPlan types.BuildingPlan `json:"currentPlan" binding:"required"`
	UserRequest string             `json:"userRequest" binding:"required"`
}

type FindShopsRequest struct {
	Address string `json:"address" binding:"required"`
}

type SearchPropertyRequest struct {
	Location string  `json:"location" binding:"required"`
	MinPrice float64 `json:"minPrice" binding:"gte=0"`
	MaxPrice float64 `json:"maxPrice" binding:"gte=0"`
}

// An omitted or zero maxPrice means "no upper bound"; the flow itself
// requires an explicit range, so the boundary supplies this default.
const defaultMaxPropertyPrice = 100000000

type ShopsResponse struct {
	Shops []types.ShopListing `json:"shops"`
}

type PropertiesResponse struct {
	Properties []types.PropertyListing `json:"properties"`
}

// Internal failures are normalized into one coarse, user-safe message per
// operation; full detail is logged server-side only.
func (h *APIHandler) fail(c *gin.Context, err error, userMsg string) {
	h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("Operation failed")
	switch {
	case errors.Is(err, ai.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": userMsg})
	case errors.Is(err, ai.ErrUpstreamCall):
		c.JSON(http.StatusBadGateway, gin.H{"error": userMsg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": userMsg})
	}
}

// --- API Handlers ---

// POST /plan/generate
func (h *APIHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	plan, err := h.generator.GenerateBuildingPlan(c.Request.Context(), types.GeneratePlanInput{
		LandLength:         req.LandLength,
		LandWidth:          req.LandWidth,
		ArchitecturalStyle: req.ArchitecturalStyle,
	})
	if err != nil {
		h.fail(c, err, "Failed to generate building plan.")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// POST /plan/refine
func (h *APIHandler) RefinePlan(c *gin.Context) {
	var req RefinePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	plan, err := h.generator.RefineBuildingPlan(c.Request.Context(), types.RefinePlanInput{
		CurrentPlan: req.CurrentPlan,
		UserRequest: req.UserRequest,
	})
	if err != nil {
		h.fail(c, err, "Failed to refine building plan.")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// POST /shops/nearby
func (h *APIHandler) FindNearbyShops(c *gin.Context) {
	var req FindShopsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	shops, err := h.generator.FindNearbyShops(c.Request.Context(), types.FindShopsInput{
		Address: req.Address,
	})
	if err != nil {
		h.fail(c, err, "Failed to find nearby shops.")
		return
	}

	c.JSON(http.StatusOK, ShopsResponse{Shops: shops})
}

// POST /property/search
func (h *APIHandler) SearchProperty(c *gin.Context) {
	var req SearchPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if req.MaxPrice == 0 {
		req.MaxPrice = defaultMaxPropertyPrice
	}

	properties, err := h.generator.SearchProperty(c.Request.Context(), types.SearchPropertyInput{
		Location: req.Location,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})
	if err != nil {
		h.fail(c, err, "Failed to search properties.")
		return
	}

	c.JSON(http.StatusOK, PropertiesResponse{Properties: properties})
}
