package extract

import (
	"time"

	"github.com/johnnybahia/marcasceara/constants"
	"github.com/johnnybahia/marcasceara/internal/entity"
	"github.com/johnnybahia/marcasceara/internal/normalize"
)

// Dilly purchase orders are a single labeled summary page: every field has
// its own anchor phrase, with the delivery forecast in a table further down.
var (
	dillyReceivedRules = []fieldRule{
		rule(`Data Emissão:\s*(\d{2}/\d{2}/\d{4})`),
	}
	dillyOrderDateRules = []fieldRule{
		// Forecast table may hold intervening column text before the date.
		rule(`(?s)Previsão.*?(\d{2}/\d{2}/\d{4})`),
	}
	dillyBrandRules = []fieldRule{
		rule(`Marca:\s*(\S+)`),
	}
	dillyQuantityRules = []fieldRule{
		rule(`Quantidade Total:\s*([\d.,]+)`),
	}
	dillyValueRules = []fieldRule{
		rule(`Total\s*R\$([\d.,]+)`),
	}
)

type dillyExtractor struct{}

func (dillyExtractor) Extract(doc Document) []entity.OrderRecord {
	received := matchOr(doc.Text, dillyReceivedRules, time.Now().Format(normalize.DateLayout))
	orderDate := matchOr(doc.Text, dillyOrderDateRules, received)

	quantity := int(normalize.ParseAmount(matchOr(doc.Text, dillyQuantityRules, "")))
	value := normalize.ParseAmount(matchOr(doc.Text, dillyValueRules, ""))

	return []entity.OrderRecord{{
		OrderDate:    orderDate,
		ReceivedDate: received,
		SourceFile:   doc.FileName,
		Client:       string(constants.VendorDilly),
		Brand:        matchOr(doc.Text, dillyBrandRules, "DILLY"),
		Location:     dillyLocation(doc.Text),
		Quantity:     quantity,
		Unit:         normalize.InferUnit(doc.Text),
		Value:        normalize.FormatBRL(value),
		OrderNumber:  normalize.FindOrderNumber(doc.Text),
	}}
}
