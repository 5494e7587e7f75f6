package types

import (
	"errors"
	"strings"
)

// Input validation mirrors the constraints declared by each flow's input
// schema. Flows reject invalid inputs before any prompt is rendered.

func (in GeneratePlanInput) Validate() error {
	if in.LandLength <= 0 {
		return errors.New("landLength must be positive")
	}
	if in.LandWidth <= 0 {
		return errors.New("landWidth must be positive")
	}
	if strings.TrimSpace(in.ArchitecturalStyle) == "" {
		return errors.New("architecturalStyle is required")
	}
	return nil
}

func (in RefinePlanInput) Validate() error {
	if strings.TrimSpace(in.UserRequest) == "" {
		return errors.New("userRequest is required")
	}
	p := in.CurrentPlan
	if len(p.RoomDetails) == 0 {
		return errors.New("currentPlan.roomDetails must not be empty")
	}
	if strings.TrimSpace(p.FloorPlanLayoutDescription) == "" {
		return errors.New("currentPlan.floorPlanLayoutDescription is required")
	}
	if p.EstimatedCost < 0 {
		return errors.New("currentPlan.estimatedCost must not be negative")
	}
	return nil
}

func (in FindShopsInput) Validate() error {
	if strings.TrimSpace(in.Address) == "" {
		return errors.New("address is required")
	}
	return nil
}

func (in SearchPropertyInput) Validate() error {
	if strings.TrimSpace(in.Location) == "" {
		return errors.New("location is required")
	}
	if in.MinPrice < 0 {
		return errors.New("minPrice must not be negative")
	}
	if in.MaxPrice < in.MinPrice {
		return errors.New("maxPrice must not be less than minPrice")
	}
	return nil
}
