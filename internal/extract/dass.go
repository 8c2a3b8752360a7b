package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/johnnybahia/marcasceara/constants"
	"github.com/johnnybahia/marcasceara/internal/entity"
	"github.com/johnnybahia/marcasceara/internal/normalize"
)

var (
	dassReceivedRules = []fieldRule{
		rule(`(?i)Data da emissão:\s*(\d{2}/\d{2}/\d{4})`),
		// Older layouts only carry the date in the Hora/Data header pair.
		rule(`(?s)Hora.*?Data\s*(\d{2}/\d{2}/\d{4})`),
	}
	dassBrandRules = []fieldRule{
		rule(`Marca:\s*([^\n]+)`),
	}
	dassValueRules = []fieldRule{
		rule(`Total valor:\s*([\d.,]+)`),
	}
	dassQuantityRules = []fieldRule{
		rule(`Total peças:\s*([\d.,]+)`),
	}
	// Inside the delivery table an 8-digit item code precedes the date.
	reDassDelivery = regexp.MustCompile(`(?s)\d{8}.*?(\d{2}/\d{2}/\d{4})`)
)

// dassDeliveryMarker starts the forecast section of the order; the delivery
// date scan is windowed to the text after it when present.
const dassDeliveryMarker = "Prev. Ent."

type dassExtractor struct{}

func (dassExtractor) Extract(doc Document) []entity.OrderRecord {
	received := matchOr(doc.Text, dassReceivedRules, time.Now().Format(normalize.DateLayout))

	quantity := int(normalize.ParseAmount(matchOr(doc.Text, dassQuantityRules, "")))
	value := normalize.ParseAmount(matchOr(doc.Text, dassValueRules, ""))

	return []entity.OrderRecord{{
		OrderDate:    dassOrderDate(doc.Text, received),
		ReceivedDate: received,
		SourceFile:   doc.FileName,
		Client:       string(constants.VendorDass),
		Brand:        matchOr(doc.Text, dassBrandRules, constants.NotFound),
		Location:     dassLocation(doc.Text),
		Quantity:     quantity,
		Unit:         normalize.InferUnit(doc.Text),
		Value:        normalize.FormatBRL(value),
		OrderNumber:  normalize.FindOrderNumber(doc.Text),
	}}
}

// dassOrderDate finds the first delivery date after the forecast marker,
// tolerating the item code and column text in between. Falls back to the
// emission date.
func dassOrderDate(text, received string) string {
	scan := text
	if idx := strings.Index(text, dassDeliveryMarker); idx >= 0 {
		scan = text[idx:]
	}
	if m := reDassDelivery.FindStringSubmatch(scan); m != nil {
		return m[1]
	}
	return received
}
