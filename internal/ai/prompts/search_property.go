package prompts

import "arch_ai_server/internal/schemas"

// SearchProperty generates fictional property listings matching a location
// and price range. Input: types.SearchPropertyInput. The flow attaches image
// URLs afterwards; the model is not asked for imagery.
var SearchProperty = bind("search_property", schemas.PropertyListReplySchema, `You are a real estate search engine. A user is looking for properties.

Based on the following criteria, generate a list of 5 to 7 fictional but realistic-sounding properties. For each property, provide a plausible address, price (in INR), number of bedrooms, number of bathrooms, and square footage. Every price must fall within the requested range. If the location is implausible or nothing matches, return an empty list.

Location: {{.Location}}
Price Range: ₹{{num .MinPrice}} - ₹{{num .MaxPrice}}`)
