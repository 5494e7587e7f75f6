package utils

import (
	"fmt"
	"strings"
)

// PlaceholderImageURL is attached to property search results; that flow does
// not ask the model for real imagery.
const PlaceholderImageURL = "https://placehold.co/600x400.png"

// DataURI builds a base64 data URI from a MIME type and an already-encoded
// payload.
func DataURI(mimeType, base64Data string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64Data)
}

// IsImageRef reports whether s looks like a usable image reference: either a
// data URI with an explicit MIME type, or an external http(s) URL.
func IsImageRef(s string) bool {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return true
	}
	if !strings.HasPrefix(s, "data:") {
		return false
	}
	rest := strings.TrimPrefix(s, "data:")
	semi := strings.Index(rest, ";base64,")
	if semi <= 0 {
		return false
	}
	return strings.Contains(rest[:semi], "/") && len(rest) > semi+len(";base64,")
}
