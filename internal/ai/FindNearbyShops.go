package ai

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"arch_ai_server/internal/ai/prompts"
	"arch_ai_server/internal/schemas"
	"arch_ai_server/internal/types"
)

// FindNearbyShops runs the single-step shop lookup. An empty list is a
// valid outcome, distinct from a schema failure.
func (g *Generator) FindNearbyShops(ctx context.Context, input types.FindShopsInput) ([]types.ShopListing, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	requestID := uuid.New().String()
	log := g.logger.With().
		Str("request_id", requestID).
		Str("flow", "find_nearby_shops").
		Logger()
	log.Info().Msg("Looking up nearby shops")

	prompt, err := prompts.FindNearbyShops.Render(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	raw, err := g.model.GenerateStructured(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("Shop lookup failed")
		return nil, err
	}

	shops, err := schemas.ParseShopList(raw)
	if err != nil {
		log.Error().Err(err).Msg("Shop list reply rejected by schema")
		return nil, err
	}

	log.Info().Int("count", len(shops)).Msg("Nearby shops found")
	return shops, nil
}
