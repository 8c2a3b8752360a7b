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
	anigerReceivedRules = []fieldRule{
		rule(`Emissão:\s*(\d{2}/\d{2}/\d{4})`),
		// Some layouts break the line between the label and the date.
		rule(`(?s)Emissão:.*?(\d{2}/\d{2}/\d{4})`),
	}
	// Totals row: quantity column first, monetary total somewhere after it.
	reAnigerTotals = regexp.MustCompile(`(?s)Totais\s+([\d.,]+).*?([\d.,]+)`)
	reAnyLongDate  = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

// anigerDeliveryGap is the minimum distance between the emission date and a
// candidate delivery date. The header block interleaves the issue date with
// unrelated dates, so "first date in the document" is the wrong answer: the
// first date further than this gap past the emission date is the delivery.
const anigerDeliveryGap = 5 * 24 * time.Hour

type anigerExtractor struct{}

func (anigerExtractor) Extract(doc Document) []entity.OrderRecord {
	received := matchOr(doc.Text, anigerReceivedRules, time.Now().Format(normalize.DateLayout))

	brand := "ANIGER"
	if strings.Contains(strings.ToUpper(doc.Text), "NIKE") {
		brand = "NIKE (Aniger)"
	}

	var quantity int
	var value float64
	if m := reAnigerTotals.FindStringSubmatch(doc.Text); m != nil {
		quantity = int(normalize.ParseAmount(m[1]))
		value = normalize.ParseAmount(m[2])
	}

	return []entity.OrderRecord{{
		OrderDate:    anigerOrderDate(doc.Text, received),
		ReceivedDate: received,
		SourceFile:   doc.FileName,
		Client:       string(constants.VendorAniger),
		Brand:        brand,
		Location:     anigerLocation(doc.Text),
		Quantity:     quantity,
		Unit:         normalize.InferUnit(doc.Text),
		Value:        normalize.FormatBRL(value),
		OrderNumber:  normalize.FindOrderNumber(doc.Text),
	}}
}

// anigerOrderDate scans every calendar date in the document and picks the
// first one more than anigerDeliveryGap after the emission date, falling
// back to the emission date itself.
func anigerOrderDate(text, received string) string {
	receivedAt, err := time.Parse(normalize.DateLayout, received)
	if err != nil {
		return received
	}
	for _, candidate := range reAnyLongDate.FindAllString(text, -1) {
		d, err := time.Parse(normalize.DateLayout, candidate)
		if err != nil {
			continue
		}
		if d.Sub(receivedAt) > anigerDeliveryGap {
			return candidate
		}
	}
	return received
}
