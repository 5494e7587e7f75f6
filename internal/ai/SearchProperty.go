package ai

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"arch_ai_server/internal/ai/prompts"
	"arch_ai_server/internal/schemas"
	"arch_ai_server/internal/types"
	"arch_ai_server/internal/utils"
)

// SearchProperty runs the single-step property search. Listings the model
// prices outside the requested range are dropped rather than trusted, and a
// placeholder image URL is attached to each survivor. An empty list is a
// valid outcome.
func (g *Generator) SearchProperty(ctx context.Context, input types.SearchPropertyInput) ([]types.PropertyListing, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	requestID := uuid.New().String()
	log := g.logger.With().
		Str("request_id", requestID).
		Str("flow", "search_property").
		Logger()
	log.Info().
		Str("location", input.Location).
		Float64("min_price", input.MinPrice).
		Float64("max_price", input.MaxPrice).
		Msg("Searching properties")

	prompt, err := prompts.SearchProperty.Render(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	raw, err := g.model.GenerateStructured(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("Property search failed")
		return nil, err
	}

	listings, err := schemas.ParsePropertyList(raw)
	if err != nil {
		log.Error().Err(err).Msg("Property list reply rejected by schema")
		return nil, err
	}

	results := make([]types.PropertyListing, 0, len(listings))
	for _, listing := range listings {
		if listing.Price < input.MinPrice || listing.Price > input.MaxPrice {
			log.Warn().
				Str("address", listing.Address).
				Float64("price", listing.Price).
				Msg("Dropping listing priced outside requested range")
			continue
		}
		listing.ImageURL = utils.PlaceholderImageURL
		results = append(results, listing)
	}

	log.Info().Int("count", len(results)).Msg("Property search finished")
	return results, nil
}
