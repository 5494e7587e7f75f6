package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"arch_ai_server/internal/types"
)

// ErrSchemaValidation marks a model reply that does not conform to the
// declared output schema.
var ErrSchemaValidation = errors.New("model reply failed schema validation")

// ParseBuildingPlan validates a raw model reply against the building plan
// schema and unmarshals it. RecommendedNumberOfRooms is forced to match the
// actual room list; the model occasionally miscounts and the room list is
// authoritative.
func ParseBuildingPlan(raw string) (*types.BuildingPlan, error) {
	cleaned := StripFences(raw)
	if err := validate(buildingPlanSchema, cleaned); err != nil {
		return nil, err
	}

	var plan types.BuildingPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	if plan.RecommendedNumberOfRooms != len(plan.RoomDetails) {
		plan.RecommendedNumberOfRooms = len(plan.RoomDetails)
	}
	return &plan, nil
}

// ParseShopList validates and unmarshals a nearby-shops reply.
func ParseShopList(raw string) ([]types.ShopListing, error) {
	cleaned := StripFences(raw)
	if err := validate(shopListSchema, cleaned); err != nil {
		return nil, err
	}

	var reply struct {
		Shops []types.ShopListing `json:"shops"`
	}
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	if reply.Shops == nil {
		reply.Shops = []types.ShopListing{}
	}
	return reply.Shops, nil
}

// ParsePropertyList validates and unmarshals a property search reply.
// ImageURL is left empty here; the flow attaches it.
func ParsePropertyList(raw string) ([]types.PropertyListing, error) {
	cleaned := StripFences(raw)
	if err := validate(propertyListSchema, cleaned); err != nil {
		return nil, err
	}

	var reply struct {
		Properties []types.PropertyListing `json:"properties"`
	}
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	if reply.Properties == nil {
		reply.Properties = []types.PropertyListing{}
	}
	return reply.Properties, nil
}

// StripFences extracts the fenced block from a model reply. Models
// frequently wrap JSON in ```json fences despite instructions, sometimes
// with prose around them; anything outside the first fenced block is
// discarded. A reply with no fences is returned trimmed.
func StripFences(s string) string {
	cleaned := strings.TrimSpace(s)
	start := strings.Index(cleaned, "```")
	if start == -1 {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned[start+3:], "json")
	if end := strings.Index(cleaned, "```"); end != -1 {
		cleaned = cleaned[:end]
	}
	return strings.TrimSpace(cleaned)
}

func validate(schema *gojsonschema.Schema, doc string) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		// Not parsable as JSON at all.
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	if !result.Valid() {
		descs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			descs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrSchemaValidation, strings.Join(descs, "; "))
	}
	return nil
}
