package extract

import (
	"regexp"
	"strings"

	"github.com/johnnybahia/marcasceara/constants"
	"github.com/johnnybahia/marcasceara/internal/entity"
	"github.com/johnnybahia/marcasceara/internal/normalize"
)

// Dakota orders are tabular: one table row is one purchase order. Column
// alignment is unreliable across their renderings, so cells are classified
// by shape, not by position.
var (
	reSequential = regexp.MustCompile(`^\d+$`)
	// Order numbers are digits plus a single trailing letter (41110T, 79632D).
	reOrderCode = regexp.MustCompile(`^\d+[A-Za-z]$`)
	reShortDate = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`)
	// Material descriptions open with a 4+ digit article code.
	reMaterialCode = regexp.MustCompile(`^\d{4,}`)
	reAlphabetic   = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s]+$`)
	reDecimalCell  = regexp.MustCompile(`^[\d.,]+$`)
)

// knownBuyers are purchasing-agent logins that show up as row cells; they
// carry no order data.
var knownBuyers = map[string]struct{}{
	"saimon":  {},
	"ccarlos": {},
}

// elasticKeyword marks rows ordering elastic material.
const elasticKeyword = "ELASTICO"

// rowSummary is the typed outcome of classifying one table row.
type rowSummary struct {
	orderNumber string
	branch      string
	material    string
	dates       []string
	unit        constants.Unit
	quantity    int
	elastic     bool
}

type dakotaExtractor struct{}

func (dakotaExtractor) Extract(doc Document) []entity.OrderRecord {
	var records []entity.OrderRecord
	for _, table := range doc.Tables {
		for _, row := range table {
			summary, ok := classifyRow(row)
			if !ok {
				continue
			}
			records = append(records, buildDakotaRecord(summary, doc.FileName))
		}
	}
	return records
}

// classifyRow inspects every cell of one table row by shape and returns a
// typed summary. Rows not opening with a plain sequential integer are
// header/label rows; rows without an order number carry no usable data.
func classifyRow(row []string) (rowSummary, bool) {
	if len(row) == 0 {
		return rowSummary{}, false
	}
	sequence := strings.TrimSpace(row[0])
	if sequence == "" || !reSequential.MatchString(sequence) {
		return rowSummary{}, false
	}

	summary := rowSummary{unit: constants.UnitPiece}
	for _, cell := range row {
		value := strings.TrimSpace(cell)
		if value == "" || value == sequence {
			continue
		}
		switch {
		case summary.orderNumber == "" && reOrderCode.MatchString(value):
			summary.orderNumber = value
		case reShortDate.MatchString(value):
			summary.dates = append(summary.dates, value)
		case strings.EqualFold(value, "PR"):
			summary.unit = constants.UnitPair
		case strings.EqualFold(value, "MT"):
			summary.unit = constants.UnitMeter
		case isKnownBuyer(value):
			// agent login, not data
		case summary.material == "" && reMaterialCode.MatchString(value):
			summary.material = value
		case summary.branch == "" && len(value) >= 4 && reAlphabetic.MatchString(value):
			summary.branch = value
		}
	}
	if summary.orderNumber == "" {
		return rowSummary{}, false
	}

	// Quantity: first decimal-shaped cell (sequence number excluded) that
	// parses to a positive integer. Heuristic; an unfamiliar row layout
	// could put another numeric column first.
	for _, cell := range row {
		value := strings.TrimSpace(cell)
		if value == "" || value == sequence || !reDecimalCell.MatchString(value) {
			continue
		}
		if n := int(normalize.ParseAmount(value)); n > 0 {
			summary.quantity = n
			break
		}
	}

	summary.elastic = strings.Contains(strings.ToUpper(strings.Join(row, " ")), elasticKeyword)
	return summary, true
}

func buildDakotaRecord(summary rowSummary, fileName string) entity.OrderRecord {
	received := normalize.ExpandShortDate(firstOrEmpty(summary.dates))
	orderDate := received
	if len(summary.dates) >= 2 {
		orderDate = normalize.ExpandShortDate(summary.dates[1])
	}

	elastic := ""
	if summary.elastic {
		elastic = "SIM"
	}

	branch := constants.NotFound
	if b := strings.TrimSpace(summary.branch); b != "" {
		branch = cityTitle.String(b)
	}

	return entity.OrderRecord{
		OrderDate:    orderDate,
		ReceivedDate: received,
		SourceFile:   fileName,
		Client:       string(constants.VendorDakota),
		Brand:        "DAKOTA (Todas)",
		Location:     branch,
		Quantity:     summary.quantity,
		Unit:         summary.unit,
		// Dakota tables carry no price column.
		Value:       normalize.FormatBRL(0),
		OrderNumber: summary.orderNumber,
		Elastic:     elastic,
	}
}

func isKnownBuyer(value string) bool {
	_, ok := knownBuyers[strings.ToLower(value)]
	return ok
}

func firstOrEmpty(dates []string) string {
	if len(dates) == 0 {
		return ""
	}
	return dates[0]
}
