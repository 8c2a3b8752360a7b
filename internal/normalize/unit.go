package normalize

import (
	"regexp"
	"strings"

	"github.com/johnnybahia/marcasceara/constants"
)

// Unit tokens as the vendors print them. A token glued to a quantity figure
// ("1.500,00 PR") is a stronger signal than the same token loose elsewhere
// in the document, so the number-adjacent patterns are checked first.
var (
	rePairAfterNumber  = regexp.MustCompile(`\d+,\d+\s*(PR|PRS|PAR|PARES)\b`)
	reMeterAfterNumber = regexp.MustCompile(`\d+,\d+\s*(M|MTS|METRO|METROS)\b`)
	rePairToken        = regexp.MustCompile(`\b(PR|PRS|PAR|PARES)\b`)
	reMeterToken       = regexp.MustCompile(`\b(M|MTS|METRO|METROS)\b`)
)

// InferUnit scans case-normalized text for unit tokens and maps them onto
// the closed unit enumeration, defaulting to UNID.
func InferUnit(text string) constants.Unit {
	up := strings.ToUpper(text)
	switch {
	case rePairAfterNumber.MatchString(up):
		return constants.UnitPair
	case reMeterAfterNumber.MatchString(up):
		return constants.UnitMeter
	case rePairToken.MatchString(up):
		return constants.UnitPair
	case reMeterToken.MatchString(up):
		return constants.UnitMeter
	}
	return constants.UnitPiece
}
