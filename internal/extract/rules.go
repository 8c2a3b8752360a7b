package extract

import (
	"regexp"
	"strings"
)

// fieldRule is one candidate pattern for a single record field. Each field
// extraction is a ranked list of rules tried in order: the first match
// produces the value, the rest are skipped, and a documented default applies
// when every rule falls through.
type fieldRule struct {
	re    *regexp.Regexp
	group int // capture group index, defaults to 1
}

func rule(pattern string) fieldRule {
	return fieldRule{re: regexp.MustCompile(pattern)}
}

// firstMatch runs the ranked rules against text and returns the first
// trimmed capture.
func firstMatch(text string, rules []fieldRule) (string, bool) {
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(text); m != nil {
			g := r.group
			if g == 0 {
				g = 1
			}
			return strings.TrimSpace(m[g]), true
		}
	}
	return "", false
}

// matchOr is firstMatch with an explicit fallback value.
func matchOr(text string, rules []fieldRule, fallback string) string {
	if v, ok := firstMatch(text, rules); ok {
		return v
	}
	return fallback
}
