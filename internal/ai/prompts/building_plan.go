package prompts

import "arch_ai_server/internal/schemas"

// GenerateBuildingPlanText produces the textual plan fields from land
// measurements and an architectural style. Input: types.GeneratePlanInput.
var GenerateBuildingPlanText = bind("generate_building_plan_text", schemas.BuildingPlanReplySchema, `You are an AI-powered architectural assistant that helps users design building plans based on land measurements and architectural style.

Given the following land measurements and architectural style, recommend the number of rooms, dimensions for each room, a basic floor plan layout, and an estimated construction cost.

Land Length: {{num .LandLength}} feet
Land Width: {{num .LandWidth}} feet
Architectural Style: {{.ArchitecturalStyle}}

Consider factors like optimal space utilization and the specific characteristics of the chosen architectural style when making your recommendations.

Return the recommended number of rooms, room details (type and size), a description of the floor plan layout, and the estimated construction cost in USD.`)

// BuildingPlanImageInput feeds the floor plan image prompt.
type BuildingPlanImageInput struct {
	ArchitecturalStyle         string
	FloorPlanLayoutDescription string
}

// BuildingPlanImage asks the image model for an illustrative floor plan.
// No output schema: the reply is media, not JSON.
var BuildingPlanImage = bind("building_plan_image", "", `Generate a 2D floor plan for a house with a {{.ArchitecturalStyle}} style and the following description: {{.FloorPlanLayoutDescription}}`)
