package async

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/johnnybahia/marcasceara/internal/core"
	"github.com/johnnybahia/marcasceara/internal/extract"
	"github.com/johnnybahia/marcasceara/internal/pdftext"
)

type pathReader struct {
	byPath map[string]pdftext.Content
}

func (r pathReader) Read(path string) (pdftext.Content, error) {
	content, ok := r.byPath[path]
	if !ok {
		return pdftext.Content{}, fmt.Errorf("%w: %s", pdftext.ErrUnreadable, path)
	}
	return content, nil
}

const anigerDoc = `ANIGER CALCADOS LTDA
Data Emissão: 01/02/2024
Entrega
20/02/2024
Marca: OLYMPIKUS
Totais 500,00 8.000,00`

func TestProcessAllKeepsInputOrder(t *testing.T) {
	t.Parallel()

	reader := pathReader{byPath: map[string]pdftext.Content{
		"a.pdf": {Text: anigerDoc},
		"c.pdf": {Text: anigerDoc},
	}}
	proc := core.NewProcessor(nil, reader, extract.NewController(nil))
	pool := NewPool(proc, nil, WithWorkers(3))

	paths := []string{"a.pdf", "b.pdf", "c.pdf"}
	results := pool.ProcessAll(context.Background(), paths)
	if len(results) != len(paths) {
		t.Fatalf("results = %d, want %d", len(results), len(paths))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Fatalf("result %d path = %q, want %q", i, r.Path, paths[i])
		}
	}
	if results[0].Err != nil || len(results[0].Records) != 1 {
		t.Fatalf("a.pdf: err=%v records=%d", results[0].Err, len(results[0].Records))
	}
	if !errors.Is(results[1].Err, pdftext.ErrUnreadable) {
		t.Fatalf("b.pdf err = %v, want ErrUnreadable", results[1].Err)
	}
	if results[2].Err != nil {
		t.Fatalf("c.pdf err = %v", results[2].Err)
	}
}

func TestProcessAllEmptyBatch(t *testing.T) {
	t.Parallel()

	proc := core.NewProcessor(nil, pathReader{}, extract.NewController(nil))
	if results := NewPool(proc, nil).ProcessAll(context.Background(), nil); len(results) != 0 {
		t.Fatalf("results = %d, want 0", len(results))
	}
}
