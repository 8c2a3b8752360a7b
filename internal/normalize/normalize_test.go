package normalize

import (
	"testing"
	"time"

	"github.com/johnnybahia/marcasceara/constants"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"1234,56", 1234.56},
		{"R$ 2.500,00", 2500},
		{"Total R$ 99,90", 99.90},
		{"1500", 1500},
		{"", 0},
		{"abc", 0},
		{"R$", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestExpandShortDate(t *testing.T) {
	t.Parallel()

	if got := ExpandShortDate("05/03/24"); got != "05/03/2024" {
		t.Fatalf("short year: got %q", got)
	}
	if got := ExpandShortDate("05/03/2024"); got != "05/03/2024" {
		t.Fatalf("already long: got %q", got)
	}
	if got := ExpandShortDate("garbage"); got != "garbage" {
		t.Fatalf("non-date shape must pass through: got %q", got)
	}
	today := time.Now().Format(DateLayout)
	if got := ExpandShortDate(""); got != today {
		t.Fatalf("empty input: got %q, want today %q", got, today)
	}
}

func TestInferUnit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want constants.Unit
	}{
		{"1.000,00 PR", constants.UnitPair},
		{"500,00 MTS", constants.UnitMeter},
		{"Pedido 10 PARES", constants.UnitPair},
		{"sem unidade", constants.UnitPiece},
		{"cabo de 2 metros", constants.UnitMeter},
		{"", constants.UnitPiece},
	}
	for _, tc := range cases {
		if got := InferUnit(tc.in); got != tc.want {
			t.Fatalf("InferUnit(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInferUnit_NumberAdjacencyWins(t *testing.T) {
	t.Parallel()

	// A loose PAR mention must lose to the meter token glued to the figure.
	if got := InferUnit("material PAR aplicado, total 120,00 MTS"); got != constants.UnitMeter {
		t.Fatalf("got %q, want METRO", got)
	}
}

func TestFindOrderNumber(t *testing.T) {
	t.Parallel()

	// CNPJ fragments shorter than six digits near the phrase are skipped.
	got := FindOrderNumber("Ordem de Compra 94 316 999 4532178")
	if got != "4532178" {
		t.Fatalf("got %q, want 4532178", got)
	}

	got = FindOrderNumber("Ordem Compra nº 987654 emitida")
	if got != "987654" {
		t.Fatalf("possessive-free phrase: got %q", got)
	}

	// Only short runs inside the lookahead window: sentinel.
	got = FindOrderNumber("Ordem de Compra 12345 e nada mais")
	if got != constants.NotFound {
		t.Fatalf("short run only: got %q, want %q", got, constants.NotFound)
	}

	if got := FindOrderNumber("sem a frase 123456"); got != constants.NotFound {
		t.Fatalf("no trigger phrase: got %q", got)
	}
}

func TestFormatBRL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{1234.5, "R$ 1.234,50"},
		{1234567.89, "R$ 1.234.567,89"},
		{15, "R$ 15,00"},
	}
	for _, tc := range cases {
		if got := FormatBRL(tc.in); got != tc.want {
			t.Fatalf("FormatBRL(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
