package types

// RoomDetail describes one room of a generated building plan.
type RoomDetail struct {
	Type string `json:"type"` // e.g., "bedroom", "living room", "kitchen"
	Size string `json:"size"` // e.g., "12x12 feet"
}

// BuildingPlan is the structured plan document produced by the generation
// flow and replaced wholesale by each refinement turn. Every field except
// PlanImageURI is always present on a successful flow; the image is
// best-effort and may be empty when the image step fails.
type BuildingPlan struct {
	RecommendedNumberOfRooms   int          `json:"recommendedNumberOfRooms"`
	RoomDetails                []RoomDetail `json:"roomDetails"`
	FloorPlanLayoutDescription string       `json:"floorPlanLayoutDescription"`
	EstimatedCost              float64      `json:"estimatedCost"` // USD
	PlanImageURI               string       `json:"planImageUri,omitempty"`
}

// ShopListing is one entry of the nearby-shops lookup.
type ShopListing struct {
	Name     string `json:"name"`
	Category string `json:"category"` // e.g., "Grocery", "Restaurant", "Pharmacy"
	Address  string `json:"address"`
}

// PropertyListing is one entry of the property search result.
type PropertyListing struct {
	Address   string  `json:"address"`
	Price     float64 `json:"price"` // INR
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Area      float64 `json:"area"` // square feet
	ImageURL  string  `json:"imageUrl"`
}

// GeneratePlanInput is the input to the building plan generation flow.
// Land dimensions are in feet.
type GeneratePlanInput struct {
	LandLength         float64 `json:"landLength"`
	LandWidth          float64 `json:"landWidth"`
	ArchitecturalStyle string  `json:"architecturalStyle"` // e.g., "Modern", "Traditional"
}

// RefinePlanInput is one refinement turn: the plan as the caller last
// received it, plus a free-text change request.
type RefinePlanInput struct {
	CurrentPlan BuildingPlan `json:"currentPlan"`
	UserRequest string       `json:"userRequest"`
}

// FindShopsInput is the input to the nearby-shops lookup flow.
type FindShopsInput struct {
	Address string `json:"address"`
}

// SearchPropertyInput is the input to the property search flow.
// Prices are in INR; MinPrice must not exceed MaxPrice.
type SearchPropertyInput struct {
	Location string  `json:"location"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}
