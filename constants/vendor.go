package constants

// Vendor identifies one of the fixed document templates the extraction
// engine understands. The value doubles as the canonical client name on
// outgoing records, so these exact strings reach the aggregation sheet.
type Vendor string

const (
	VendorDilly   Vendor = "DILLY SPORTS"
	VendorAniger  Vendor = "ANIGER"
	VendorDass    Vendor = "Grupo DASS"
	VendorDakota  Vendor = "DAKOTA"
	VendorUnknown Vendor = ""
)

// NotFound is the placeholder stored when a textual field cannot be located.
// It is distinct from zero/empty so downstream consumers can test for
// "unknown" uniformly.
const NotFound = "N/D"

// AllVendors lists the recognized templates in classifier priority order.
var AllVendors = []Vendor{VendorDilly, VendorAniger, VendorDass, VendorDakota}

// ClientNames returns the closed set of client names as plain strings.
func ClientNames() []string {
	result := make([]string, len(AllVendors))
	for i, v := range AllVendors {
		result[i] = string(v)
	}
	return result
}
