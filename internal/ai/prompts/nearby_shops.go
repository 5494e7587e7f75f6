package prompts

import "arch_ai_server/internal/schemas"

// FindNearbyShops generates a fictional-but-plausible list of shops near an
// address. Input: types.FindShopsInput.
var FindNearbyShops = bind("find_nearby_shops", schemas.ShopListReplySchema, `You are a helpful local guide. A user has provided their address and wants to find shops nearby.

Based on the address "{{.Address}}", generate a list of 5 to 7 fictional but realistic-sounding shops.

Include a mix of categories like "Grocery", "Restaurant", "Cafe", and "Pharmacy". For each shop, provide a name, its category, and a plausible, complete street address near the user's location. If the address does not plausibly correspond to any shops, return an empty list.`)
