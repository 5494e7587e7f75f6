package schemas

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// The registry below is the single source of truth for every flow's output
// shape. Each schema is sent to the model verbatim (the per-field
// descriptions steer generation) and is then used to validate the reply
// before it is unmarshalled. A reply that fails validation is a generation
// failure, never coerced.

// BuildingPlanReplySchema constrains the text fields of a building plan.
// The plan image is produced by a separate image step and is not part of
// the model's structured reply. Shared by generation and refinement so both
// produce interchangeable documents.
const BuildingPlanReplySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "recommendedNumberOfRooms": {
      "type": "integer",
      "minimum": 1,
      "description": "The AI-recommended number of rooms for the given land size."
    },
    "roomDetails": {
      "type": "array",
      "minItems": 1,
      "description": "Details for each room, including type and size.",
      "items": {
        "type": "object",
        "properties": {
          "type": {
            "type": "string",
            "minLength": 1,
            "description": "The type of room (e.g., bedroom, living room, kitchen)."
          },
          "size": {
            "type": "string",
            "minLength": 1,
            "description": "The recommended size of the room (e.g., 12x12 feet)."
          }
        },
        "required": ["type", "size"]
      }
    },
    "floorPlanLayoutDescription": {
      "type": "string",
      "minLength": 1,
      "description": "A textual description of the basic floor plan layout."
    },
    "estimatedCost": {
      "type": "number",
      "minimum": 0,
      "description": "The estimated construction cost in USD."
    }
  },
  "required": ["recommendedNumberOfRooms", "roomDetails", "floorPlanLayoutDescription", "estimatedCost"]
}`

// ShopListReplySchema constrains the nearby-shops lookup reply. An empty
// list is valid ("no results").
const ShopListReplySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "shops": {
      "type": "array",
      "description": "A list of nearby shops.",
      "items": {
        "type": "object",
        "properties": {
          "name": {
            "type": "string",
            "minLength": 1,
            "description": "The name of the shop."
          },
          "category": {
            "type": "string",
            "minLength": 1,
            "description": "The category of the shop (e.g., Grocery, Restaurant, Pharmacy)."
          },
          "address": {
            "type": "string",
            "minLength": 1,
            "description": "The full address of the shop."
          }
        },
        "required": ["name", "category", "address"]
      }
    }
  },
  "required": ["shops"]
}`

// PropertyListReplySchema constrains the property search reply. The model is
// not asked for imagery; imageUrl is attached by the flow afterwards.
const PropertyListReplySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "properties": {
      "type": "array",
      "description": "A list of matching properties.",
      "items": {
        "type": "object",
        "properties": {
          "address": {
            "type": "string",
            "minLength": 1,
            "description": "The full address of the property."
          },
          "price": {
            "type": "number",
            "minimum": 0,
            "description": "The price of the property in INR."
          },
          "bedrooms": {
            "type": "integer",
            "minimum": 0,
            "description": "The number of bedrooms."
          },
          "bathrooms": {
            "type": "integer",
            "minimum": 0,
            "description": "The number of bathrooms."
          },
          "area": {
            "type": "number",
            "minimum": 0,
            "description": "The total area of the property in square feet."
          }
        },
        "required": ["address", "price", "bedrooms", "bathrooms", "area"]
      }
    }
  },
  "required": ["properties"]
}`

var (
	buildingPlanSchema *gojsonschema.Schema
	shopListSchema     *gojsonschema.Schema
	propertyListSchema *gojsonschema.Schema
)

func init() {
	buildingPlanSchema = mustCompile("building_plan", BuildingPlanReplySchema)
	shopListSchema = mustCompile("shop_list", ShopListReplySchema)
	propertyListSchema = mustCompile("property_list", PropertyListReplySchema)
}

func mustCompile(name, doc string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("schemas: invalid %s schema: %v", name, err))
	}
	return schema
}
