package pdftext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
)

func word(s string, x, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w}
}

func TestRowCells_GapClustering(t *testing.T) {
	t.Parallel()

	// "Brejo" and "Santo" sit close together (one cell); the quantity is a
	// wide gap away (own cell).
	row := &pdf.Row{Content: pdf.TextHorizontal{
		word("1", 10, 6),
		word("Brejo", 60, 24),
		word("Santo", 87, 24),
		word("1.500,00", 200, 40),
	}}

	cells := rowCells(row)
	want := []string{"1", "Brejo Santo", "1.500,00"}
	if len(cells) != len(want) {
		t.Fatalf("cells = %q, want %q", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cell %d = %q, want %q", i, cells[i], want[i])
		}
	}
}

func TestRowCells_Empty(t *testing.T) {
	t.Parallel()

	if cells := rowCells(&pdf.Row{}); len(cells) != 0 {
		t.Fatalf("empty row yields no cells, got %q", cells)
	}
}

func TestRead_MissingFileIsUnreadable(t *testing.T) {
	t.Parallel()

	r := NewReader(nil)
	_, err := r.Read(filepath.Join(t.TempDir(), "nope.pdf"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("want ErrUnreadable, got %v", err)
	}
}

func TestRead_GarbageFileIsUnreadable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewReader(nil)
	if _, err := r.Read(path); !errors.Is(err, ErrUnreadable) {
		t.Fatalf("want ErrUnreadable, got %v", err)
	}
}
