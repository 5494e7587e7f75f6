package ai

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"arch_ai_server/internal/ai/prompts"
	"arch_ai_server/internal/schemas"
	"arch_ai_server/internal/types"
)

// RefineBuildingPlan runs one refinement turn. The current plan is embedded
// verbatim into the prompt and the model produces a wholesale replacement
// document; the caller is expected to discard the prior plan entirely. The
// image is regenerated from the new floor plan description (style carries
// implicitly through the description) and degrades gracefully like
// generation does.
func (g *Generator) RefineBuildingPlan(ctx context.Context, input types.RefinePlanInput) (*types.BuildingPlan, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	requestID := uuid.New().String()
	log := g.logger.With().
		Str("request_id", requestID).
		Str("flow", "refine_building_plan").
		Logger()
	log.Info().
		Int("current_rooms", input.CurrentPlan.RecommendedNumberOfRooms).
		Msg("Refining building plan")

	textPrompt, err := prompts.RefineBuildingPlanText.Render(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	raw, err := g.model.GenerateStructured(ctx, textPrompt)
	if err != nil {
		log.Error().Err(err).Msg("Plan refinement failed")
		return nil, err
	}

	plan, err := schemas.ParseBuildingPlan(raw)
	if err != nil {
		log.Error().Err(err).Msg("Refined plan reply rejected by schema")
		return nil, err
	}

	g.attachPlanImage(ctx, log, plan, prompts.RefinedPlanImage, prompts.RefinedPlanImageInput{
		FloorPlanLayoutDescription: plan.FloorPlanLayoutDescription,
	})

	log.Info().
		Int("rooms", plan.RecommendedNumberOfRooms).
		Bool("has_image", plan.PlanImageURI != "").
		Msg("Building plan refined")
	return plan, nil
}
