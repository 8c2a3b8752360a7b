// Package core coordinates reading a source document and running the
// extraction engine over it, one file at a time.
package core

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/johnnybahia/marcasceara/internal/entity"
	"github.com/johnnybahia/marcasceara/internal/extract"
	"github.com/johnnybahia/marcasceara/internal/pdftext"
)

// DocumentReader parses a source file into text and table rows.
type DocumentReader interface {
	Read(path string) (pdftext.Content, error)
}

// Processor coordinates document read then vendor field extraction.
type Processor struct {
	logger     *slog.Logger
	reader     DocumentReader
	controller *extract.Controller
}

func NewProcessor(logger *slog.Logger, reader DocumentReader, controller *extract.Controller) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, reader: reader, controller: controller}
}

// ProcessFile reads one file and returns its extracted order records.
// Failures keep their distinct causes: pdftext.ErrUnreadable for files that
// could not be parsed, extract.ErrNoMatch for readable files no vendor
// profile recognized.
func (p *Processor) ProcessFile(ctx context.Context, path string) ([]entity.OrderRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := p.reader.Read(path)
	if err != nil {
		p.logger.Error("processor.read.failed", "path", path, "err", err)
		return nil, err
	}
	p.logger.Debug("processor read success",
		"path", path,
		"text_bytes", len(content.Text),
		"tables", len(content.Tables),
	)

	records, err := p.controller.Run(extract.Document{
		FileName: filepath.Base(path),
		Text:     content.Text,
		Tables:   content.Tables,
	})
	if err != nil {
		return nil, err
	}
	p.logger.Debug("processor extract success", "path", path, "records", len(records))
	return records, nil
}
