package extract

import (
	"strings"

	"github.com/johnnybahia/marcasceara/constants"
)

// dassTaxIDFragment is the leading block of the Dass group CNPJ. Some of
// their order layouts never spell the group name in extractable text, but
// the tax id is always printed.
const dassTaxIDFragment = "01287588"

// Classify inspects raw document text for vendor-identifying markers and
// selects exactly one profile. Markers are tested in a fixed priority order,
// so a document containing several tokens always resolves to the
// earliest-priority vendor.
func Classify(text string) constants.Vendor {
	up := strings.ToUpper(text)
	switch {
	case strings.Contains(up, "DILLY"):
		return constants.VendorDilly
	case strings.Contains(up, "ANIGER"):
		return constants.VendorAniger
	case strings.Contains(up, "DASS") || strings.Contains(text, dassTaxIDFragment):
		return constants.VendorDass
	case strings.Contains(up, "DAKOTA"):
		return constants.VendorDakota
	}
	return constants.VendorUnknown
}
