// Package pdftext turns partner PDF files into the plain text and
// best-effort table rows the extraction engine consumes. It is the only
// place that touches the binary document format.
package pdftext

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadable marks source files that could not be opened or parsed at
// all, as opposed to readable documents no vendor profile matches. The batch
// runner reports the two cases separately.
var ErrUnreadable = errors.New("document unreadable")

// cellGap is the horizontal distance (in PDF points) between two words that
// starts a new cell when rebuilding table rows from positioned text. Column
// alignment varies across vendor renderings, so this stays a coarse split.
const cellGap = 12.0

// Content is everything the extraction engine needs from one file.
type Content struct {
	// Text is the concatenated text of every page.
	Text string
	// Tables holds one table per page: rows of cell strings recovered by
	// gap clustering. Narrative vendors ignore it.
	Tables [][][]string
}

// Reader parses PDF files from disk.
type Reader struct {
	logger *slog.Logger
}

func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// Read extracts text and table rows from the file at path. Open or parse
// failures wrap ErrUnreadable; a page that fails to yield text is skipped
// rather than failing the document. The underlying library panics on some
// malformed files, so those are recovered into ErrUnreadable as well.
func (r *Reader) Read(path string) (content Content, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			content = Content{}
			err = fmt.Errorf("%w: %s: %v", ErrUnreadable, path, rec)
		}
	}()

	return r.read(path)
}

func (r *Reader) read(path string) (Content, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return Content{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn("pdftext.close_failed", "path", path, "error", cerr)
		}
	}()

	var text strings.Builder
	var tables [][][]string
	for pageNum := 1; pageNum <= doc.NumPage(); pageNum++ {
		page := doc.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			r.logger.Warn("pdftext.page_skipped", "path", path, "page", pageNum, "error", err)
			continue
		}

		var table [][]string
		for _, row := range rows {
			cells := rowCells(row)
			if len(cells) == 0 {
				continue
			}
			text.WriteString(strings.Join(cells, " "))
			text.WriteByte('\n')
			table = append(table, cells)
		}
		if len(table) > 0 {
			tables = append(tables, table)
		}
	}
	return Content{Text: text.String(), Tables: tables}, nil
}

// rowCells groups one positioned text row into cells, splitting wherever
// the horizontal gap between consecutive words exceeds cellGap.
func rowCells(row *pdf.Row) []string {
	var cells []string
	var current strings.Builder
	var lastEnd float64
	for i, word := range row.Content {
		if i > 0 {
			if word.X-lastEnd > cellGap {
				cells = appendCell(cells, &current)
			} else {
				current.WriteByte(' ')
			}
		}
		current.WriteString(word.S)
		lastEnd = word.X + word.W
	}
	return appendCell(cells, &current)
}

func appendCell(cells []string, b *strings.Builder) []string {
	cell := strings.TrimSpace(b.String())
	b.Reset()
	if cell == "" {
		return cells
	}
	return append(cells, cell)
}
