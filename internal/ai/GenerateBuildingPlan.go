package ai

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"arch_ai_server/internal/ai/prompts"
	"arch_ai_server/internal/schemas"
	"arch_ai_server/internal/types"
	"arch_ai_server/internal/utils"
)

// GenerateBuildingPlan runs the two-step generation flow: structured text
// plan first, then an illustrative floor plan image derived from it. The
// image step is best-effort: on failure the plan is returned with
// PlanImageURI empty, because the textual plan is the primary deliverable.
func (g *Generator) GenerateBuildingPlan(ctx context.Context, input types.GeneratePlanInput) (*types.BuildingPlan, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	requestID := uuid.New().String()
	log := g.logger.With().
		Str("request_id", requestID).
		Str("flow", "generate_building_plan").
		Logger()
	log.Info().
		Float64("land_length", input.LandLength).
		Float64("land_width", input.LandWidth).
		Str("style", input.ArchitecturalStyle).
		Msg("Generating building plan")

	textPrompt, err := prompts.GenerateBuildingPlanText.Render(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	raw, err := g.model.GenerateStructured(ctx, textPrompt)
	if err != nil {
		log.Error().Err(err).Msg("Plan text generation failed")
		return nil, err
	}

	plan, err := schemas.ParseBuildingPlan(raw)
	if err != nil {
		log.Error().Err(err).Msg("Plan reply rejected by schema")
		return nil, err
	}

	g.attachPlanImage(ctx, log, plan, prompts.BuildingPlanImage, prompts.BuildingPlanImageInput{
		ArchitecturalStyle:         input.ArchitecturalStyle,
		FloorPlanLayoutDescription: plan.FloorPlanLayoutDescription,
	})

	log.Info().
		Int("rooms", plan.RecommendedNumberOfRooms).
		Bool("has_image", plan.PlanImageURI != "").
		Msg("Building plan generated")
	return plan, nil
}

// attachPlanImage runs the image step shared by generation and refinement.
// Any failure is logged and swallowed; the plan stays valid without an image.
func (g *Generator) attachPlanImage(ctx context.Context, log zerolog.Logger, plan *types.BuildingPlan, tmpl prompts.Template, input any) {
	imagePrompt, err := tmpl.Render(input)
	if err != nil {
		log.Warn().Err(err).Msg("Image prompt rendering failed, returning plan without image")
		return
	}
	uri, err := g.model.GenerateImage(ctx, imagePrompt)
	if err != nil {
		log.Warn().Err(err).Msg("Image generation failed, returning plan without image")
		return
	}
	if !utils.IsImageRef(uri) {
		log.Warn().Msg("Image reply is not a usable reference, returning plan without image")
		return
	}
	plan.PlanImageURI = uri
}
