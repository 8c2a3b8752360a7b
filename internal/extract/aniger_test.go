package extract

import (
	"testing"

	"github.com/johnnybahia/marcasceara/constants"
)

const anigerOrderText = `ANIGER CALCADOS E ESPORTES
Pedido de Compra
Emissão: 01/02/2024
Aprovação: 03/02/2024
Entrega prevista: 20/02/2024
Planta: QUIXERAMOBIM
Produto NIKE AIR Cabedal
Totais 500,00 9.800,00
Ordem de Compra 7654321
`

func TestAniger_FullDocument(t *testing.T) {
	t.Parallel()

	r := anigerExtractor{}.Extract(Document{FileName: "aniger.pdf", Text: anigerOrderText})[0]

	if r.ReceivedDate != "01/02/2024" {
		t.Fatalf("received date: %q", r.ReceivedDate)
	}
	// 03/02 is only two days past emission; 20/02 is the first date more
	// than five days out and wins.
	if r.OrderDate != "20/02/2024" {
		t.Fatalf("order date: %q", r.OrderDate)
	}
	if r.Brand != "NIKE (Aniger)" {
		t.Fatalf("brand override: %q", r.Brand)
	}
	if r.Client != "ANIGER" {
		t.Fatalf("client: %q", r.Client)
	}
	if r.Quantity != 500 {
		t.Fatalf("quantity: %d", r.Quantity)
	}
	if r.Value != "R$ 9.800,00" {
		t.Fatalf("value: %q", r.Value)
	}
	if r.OrderNumber != "7654321" {
		t.Fatalf("order number: %q", r.OrderNumber)
	}
	if r.Location != "Quixeramobim" {
		t.Fatalf("location: %q", r.Location)
	}
}

func TestAniger_DefaultBrandAndDateFallback(t *testing.T) {
	t.Parallel()

	// No date beats the five-day gap, so the order date stays the emission
	// date; no NIKE mention keeps the house brand.
	text := `ANIGER
Emissão: 01/02/2024
Conferência: 04/02/2024
Planta: IVOTI
`
	r := anigerExtractor{}.Extract(Document{FileName: "a.pdf", Text: text})[0]

	if r.OrderDate != "01/02/2024" {
		t.Fatalf("order date fallback: %q", r.OrderDate)
	}
	if r.Brand != "ANIGER" {
		t.Fatalf("brand: %q", r.Brand)
	}
	if r.Location != "Ivoti" {
		t.Fatalf("location: %q", r.Location)
	}
	if r.Quantity != 0 || r.Value != "R$ 0,00" {
		t.Fatalf("numeric defaults: %d %q", r.Quantity, r.Value)
	}
	if r.OrderNumber != constants.NotFound {
		t.Fatalf("order number sentinel: %q", r.OrderNumber)
	}
}

func TestAniger_LineBrokenEmissionLabel(t *testing.T) {
	t.Parallel()

	text := "ANIGER\nEmissão:\n15/05/2024\n"
	r := anigerExtractor{}.Extract(Document{FileName: "a.pdf", Text: text})[0]
	if r.ReceivedDate != "15/05/2024" {
		t.Fatalf("windowed emission scan: %q", r.ReceivedDate)
	}
}
