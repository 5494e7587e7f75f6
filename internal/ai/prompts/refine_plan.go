package prompts

import "arch_ai_server/internal/schemas"

// RefineBuildingPlanText embeds the full current plan (roomDetails expanded
// one per line) alongside the verbatim user request, and asks for a complete
// replacement plan against the same schema as generation. Input:
// types.RefinePlanInput.
var RefineBuildingPlanText = bind("refine_building_plan_text", schemas.BuildingPlanReplySchema, `You are an AI-powered architectural assistant. A user has provided an existing building plan and a request to modify it.

Your task is to generate a new, updated building plan that incorporates the user's requested changes. You must regenerate the complete plan: the number of rooms, room details, floor plan description, and estimated cost. Carry forward unchanged any part of the plan the request does not affect.

Current Plan:
- Recommended Number of Rooms: {{.CurrentPlan.RecommendedNumberOfRooms}}
- Room Details:
{{- range .CurrentPlan.RoomDetails}}
  - {{.Type}}: {{.Size}}
{{- end}}
- Floor Plan Layout: {{.CurrentPlan.FloorPlanLayoutDescription}}
- Estimated Cost: ${{num .CurrentPlan.EstimatedCost}}

User's Refinement Request:
"{{.UserRequest}}"

Now, generate the updated and complete building plan based on this request.`)

// RefinedPlanImageInput feeds the post-refinement image prompt. Style is
// carried implicitly through the new description, not re-supplied.
type RefinedPlanImageInput struct {
	FloorPlanLayoutDescription string
}

// RefinedPlanImage regenerates the floor plan image from the refined
// description.
var RefinedPlanImage = bind("refined_plan_image", "", `Generate a 2D floor plan based on the following description: {{.FloorPlanLayoutDescription}}`)
