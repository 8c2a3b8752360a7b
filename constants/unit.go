package constants

// Unit is the canonical measurement unit for an order quantity.
type Unit string

// Stable values (the aggregation sheet expects these exact strings).
const (
	UnitPair  Unit = "PAR"   // pairs of footwear components
	UnitMeter Unit = "METRO" // fabric and strap material sold by length
	UnitPiece Unit = "UNID"  // fallback when no unit token is found
)

var allUnits = []Unit{UnitPair, UnitMeter, UnitPiece}

// UnitNames returns the unit enumeration as plain strings.
func UnitNames() []string {
	result := make([]string, len(allUnits))
	for i, u := range allUnits {
		result[i] = string(u)
	}
	return result
}
