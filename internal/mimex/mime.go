// Package mimex guesses image MIME types from file names.
package mimex

import "strings"

// ImageContentType returns the MIME type for an image filename based on its
// extension. Unknown extensions fall back to application/octet-stream.
func ImageContentType(filename string) string {
	parts := strings.Split(filename, ".")
	ext := strings.ToLower(parts[len(parts)-1])
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
