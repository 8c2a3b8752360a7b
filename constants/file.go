package constants

import "strings"

// AllowedExtensions holds the file extensions accepted by intake scanning.
// The engine only understands the partners' PDF purchase orders.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
