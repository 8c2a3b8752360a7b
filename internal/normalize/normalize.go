// Package normalize holds the pure text-normalization routines shared by
// every vendor extractor: Brazilian monetary parsing, short-date expansion,
// unit inference and purchase-order number search. All functions degrade to
// documented defaults instead of returning errors; heuristic extraction over
// real-world documents must prefer a partial record over a hard failure.
package normalize

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the day/month/four-digit-year form used on every record.
const DateLayout = "02/01/2006"

// ParseAmount converts Brazilian monetary text ("R$ 1.234,56", "Total 500,00")
// into a float. The currency symbol and the literal word "total" are
// stripped; when both separators are present, "." groups thousands and ","
// marks decimals. Returns 0 on empty or unparsable input, never an error.
func ParseAmount(text string) float64 {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, "r$", "")
	s = strings.ReplaceAll(s, "total", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ExpandShortDate turns DD/MM/YY into DD/MM/20YY. Any other shape is
// returned unchanged; empty input yields the current date.
func ExpandShortDate(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Now().Format(DateLayout)
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) == 3 && len(parts[2]) == 2 {
		return parts[0] + "/" + parts[1] + "/20" + parts[2]
	}
	return text
}

// FormatBRL renders an amount in the locale form the sheet expects:
// "R$ 1.234,56" with "." grouping thousands and "," marking decimals.
func FormatBRL(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	return "R$ " + b.String() + "," + fracPart
}
