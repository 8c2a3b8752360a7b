package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/johnnybahia/marcasceara/constants"
)

var (
	// Structured Dass header: vendor token, NE region code, city.
	reDassHeader = regexp.MustCompile(`DASS\s+(NE-\d{2})\s+([A-ZÀ-Ÿ]+)`)
	reCityLabel  = regexp.MustCompile(`CIDADE:\s*([^\n]+)`)
	reRegionCode = regexp.MustCompile(`NE-\d{2}`)
	// Generic ", CITY-UF" address tail used on Dilly orders.
	reCityState = regexp.MustCompile(`,\s*([A-Z\s]+)-[A-Z]{2}`)
)

// supplierCities are printed on the vendors' own letterheads and must never
// be mistaken for the customer's delivery city.
var supplierCities = []string{"EUSEBIO", "CRUZ DAS ALMAS", "MARFIM"}

var cityTitle = cases.Title(language.BrazilianPortuguese)

// dassLocation tries the structured header first, then the "CIDADE:" labels
// with country/postal noise stripped and the vendor's own cities excluded.
// A region code found anywhere in the text is appended to the city.
func dassLocation(text string) string {
	up := strings.ToUpper(text)

	if m := reDassHeader.FindStringSubmatch(up); m != nil {
		return cityTitle.String(m[2]) + " (" + m[1] + ")"
	}

	code := ""
	if m := reRegionCode.FindString(up); m != "" {
		code = " (" + m + ")"
	}
	for _, m := range reCityLabel.FindAllStringSubmatch(up, -1) {
		city := strings.ReplaceAll(m[1], "- BRAZIL", "")
		city = strings.ReplaceAll(city, "BRAZIL", "")
		city, _, _ = strings.Cut(city, "-")
		city, _, _ = strings.Cut(city, "CEP")
		city = strings.TrimSpace(city)
		if len(city) <= 3 || isSupplierCity(city) {
			continue
		}
		return cityTitle.String(city) + code
	}
	return constants.NotFound
}

// dillyLocation accepts the generic ", CITY-UF" pattern only when it looks
// like a real city (short, not the supplier address), then falls back to the
// small set of cities Dilly actually ships to.
func dillyLocation(text string) string {
	up := strings.ToUpper(text)

	if m := reCityState.FindStringSubmatch(up); m != nil {
		city := strings.TrimSpace(m[1])
		if len(city) < 30 && !strings.Contains(city, "MARFIM") {
			return cityTitle.String(city)
		}
	}
	switch {
	case strings.Contains(up, "BREJO"):
		return "Brejo Santo"
	case strings.Contains(up, "MORADA"):
		return "Morada Nova"
	case strings.Contains(up, "QUIXERAMOBIM"):
		return "Quixeramobim"
	}
	return constants.NotFound
}

// anigerLocation only knows the two plants Aniger delivers to.
func anigerLocation(text string) string {
	up := strings.ToUpper(text)
	switch {
	case strings.Contains(up, "QUIXERAMOBIM"):
		return "Quixeramobim"
	case strings.Contains(up, "IVOTI"):
		return "Ivoti"
	}
	return constants.NotFound
}

func isSupplierCity(city string) bool {
	for _, s := range supplierCities {
		if strings.Contains(city, s) {
			return true
		}
	}
	return false
}
