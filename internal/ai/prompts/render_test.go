package prompts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arch_ai_server/internal/ai/prompts"
	"arch_ai_server/internal/types"
)

func TestGenerateBuildingPlanText_Render(t *testing.T) {
	input := types.GeneratePlanInput{
		LandLength:         60,
		LandWidth:          40,
		ArchitecturalStyle: "Modern",
	}

	rendered, err := prompts.GenerateBuildingPlanText.Render(input)
	require.NoError(t, err)

	assert.Contains(t, rendered, "Land Length: 60 feet")
	assert.Contains(t, rendered, "Land Width: 40 feet")
	assert.Contains(t, rendered, "Architectural Style: Modern")
	// The bound output schema is appended as the reply contract.
	assert.Contains(t, rendered, "recommendedNumberOfRooms")
	assert.Contains(t, rendered, "estimated construction cost in USD")
}

func TestGenerateBuildingPlanText_RenderIsDeterministic(t *testing.T) {
	input := types.GeneratePlanInput{LandLength: 50, LandWidth: 30, ArchitecturalStyle: "Colonial"}

	first, err := prompts.GenerateBuildingPlanText.Render(input)
	require.NoError(t, err)
	second, err := prompts.GenerateBuildingPlanText.Render(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRefineBuildingPlanText_RenderExpandsRoomDetails(t *testing.T) {
	input := types.RefinePlanInput{
		CurrentPlan: types.BuildingPlan{
			RecommendedNumberOfRooms: 2,
			RoomDetails: []types.RoomDetail{
				{Type: "bedroom", Size: "12x12 feet"},
				{Type: "kitchen", Size: "10x14 feet"},
			},
			FloorPlanLayoutDescription: "Bedrooms on the east wing.",
			EstimatedCost:              2500000,
		},
		UserRequest: "Make the kitchen bigger",
	}

	rendered, err := prompts.RefineBuildingPlanText.Render(input)
	require.NoError(t, err)

	assert.Contains(t, rendered, "- bedroom: 12x12 feet")
	assert.Contains(t, rendered, "- kitchen: 10x14 feet")
	assert.Contains(t, rendered, `"Make the kitchen bigger"`)
	assert.Contains(t, rendered, "Bedrooms on the east wing.")
	// Large costs must render as plain decimals, not exponent notation.
	assert.Contains(t, rendered, "$2500000")
	assert.NotContains(t, rendered, "e+06")
	// One line per room, in generation order.
	bedroomIdx := strings.Index(rendered, "- bedroom")
	kitchenIdx := strings.Index(rendered, "- kitchen")
	assert.Less(t, bedroomIdx, kitchenIdx)
}

func TestImagePrompts_RenderWithoutReplyContract(t *testing.T) {
	rendered, err := prompts.BuildingPlanImage.Render(prompts.BuildingPlanImageInput{
		ArchitecturalStyle:         "Modern",
		FloorPlanLayoutDescription: "Open plan living area.",
	})
	require.NoError(t, err)
	assert.Contains(t, rendered, "Modern")
	assert.Contains(t, rendered, "Open plan living area.")
	assert.NotContains(t, rendered, "JSON Schema")

	rendered, err = prompts.RefinedPlanImage.Render(prompts.RefinedPlanImageInput{
		FloorPlanLayoutDescription: "Two bathrooms off the hallway.",
	})
	require.NoError(t, err)
	assert.Contains(t, rendered, "Two bathrooms off the hallway.")
	assert.NotContains(t, rendered, "JSON Schema")
}

func TestSearchProperty_Render(t *testing.T) {
	rendered, err := prompts.SearchProperty.Render(types.SearchPropertyInput{
		Location: "Austin",
		MinPrice: 1000000,
		MaxPrice: 5000000,
	})
	require.NoError(t, err)

	assert.Contains(t, rendered, "Location: Austin")
	assert.Contains(t, rendered, "₹1000000 - ₹5000000")
}

func TestRender_FailsOnMissingPlaceholder(t *testing.T) {
	// A map input missing a referenced field must fail, never render a
	// partial prompt.
	_, err := prompts.FindNearbyShops.Render(map[string]string{"NotAddress": "x"})
	assert.Error(t, err)
}
