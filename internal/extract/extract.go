// Package extract implements the multi-vendor field-extraction engine:
// a vendor classifier, one extractor per vendor template and the controller
// that dispatches between them. Extraction is best-effort and rule-based;
// individual fields that cannot be located degrade to documented defaults
// so that one missing field never discards an otherwise-valid record.
package extract

import (
	"errors"
	"log/slog"

	"github.com/johnnybahia/marcasceara/constants"
	"github.com/johnnybahia/marcasceara/internal/entity"
)

// ErrNoMatch signals that no vendor profile matched the document. It is not
// a failure: the caller skips the file and leaves it unarchived. Unreadable
// source files surface as a different error from the PDF reader.
var ErrNoMatch = errors.New("no vendor profile matched")

// Document is the parsed content of one source file as handed over by the
// document reader: concatenated page text plus best-effort table rows
// (tables → rows → cell strings, cells possibly empty).
type Document struct {
	FileName string
	Text     string
	Tables   [][][]string
}

// Extractor turns one classified document into order records. Narrative
// vendors always yield exactly one record; the tabular vendor yields one per
// qualifying table row.
type Extractor interface {
	Extract(doc Document) []entity.OrderRecord
}

// Controller classifies a document and dispatches to the matching vendor
// extractor. It holds no per-document state and is safe for concurrent use.
type Controller struct {
	logger     *slog.Logger
	extractors map[constants.Vendor]Extractor
}

func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		logger: logger,
		extractors: map[constants.Vendor]Extractor{
			constants.VendorDilly:  dillyExtractor{},
			constants.VendorAniger: anigerExtractor{},
			constants.VendorDass:   dassExtractor{},
			constants.VendorDakota: dakotaExtractor{},
		},
	}
}

// Run classifies the document and returns its order records, or ErrNoMatch
// when no vendor is recognized or the tabular extractor found no data rows.
func (c *Controller) Run(doc Document) ([]entity.OrderRecord, error) {
	vendor := Classify(doc.Text)
	if vendor == constants.VendorUnknown {
		c.logger.Debug("extract.unrecognized", "file", doc.FileName)
		return nil, ErrNoMatch
	}

	records := c.extractors[vendor].Extract(doc)
	if len(records) == 0 {
		c.logger.Warn("extract.no_records", "file", doc.FileName, "vendor", vendor)
		return nil, ErrNoMatch
	}

	c.logger.Debug("extract.ok", "file", doc.FileName, "vendor", vendor, "records", len(records))
	return records, nil
}
