package normalize

import (
	"regexp"

	"github.com/johnnybahia/marcasceara/constants"
)

// reOrderNumber anchors on the "Ordem de Compra" phrase and allows up to 50
// arbitrary characters before the number itself. The 6-digit floor is
// deliberate: the vendors print their CNPJ next to the order number, and its
// fragments (94, 316, 999, 0009, 83) would otherwise be captured. Shorter
// digit runs are skipped in favor of the first real 6+ digit candidate.
var reOrderNumber = regexp.MustCompile(`Ordem\s+(?:de\s+)?[Cc]ompra[\s\S]{0,50}?(\d{6,})`)

// FindOrderNumber returns the purchase-order number near the first
// "Ordem de Compra" phrase, or the NotFound sentinel.
func FindOrderNumber(text string) string {
	if m := reOrderNumber.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return constants.NotFound
}
