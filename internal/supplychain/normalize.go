package supplychain

import (
	"regexp"
	"strings"
)

var (
	// Periods must survive normalization: domain names like openx.com are
	// the primary match key. Commas, hyphens, and underscores carry the
	// ads.txt field structure.
	specialCharsRE = regexp.MustCompile(`[^\w\s,.\-]`)
	commaRE        = regexp.MustCompile(`\s*,\s*`)
	whitespaceRE   = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a raw line of report or referential text into the
// comparison key used for matching: special characters stripped, comma
// spacing fixed to ", " so "a.com,123" and "a.com, 123" share one key,
// whitespace collapsed, lowercased. Total and idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	line := specialCharsRE.ReplaceAllString(raw, "")
	line = commaRE.ReplaceAllString(line, ", ")
	line = whitespaceRE.ReplaceAllString(line, " ")
	return strings.ToLower(strings.TrimSpace(line))
}

// bidderPrefix extracts the vendor portion of a normalized line: the
// substring before the first comma. Returns "" when the line has no comma.
func bidderPrefix(normalized string) string {
	i := strings.Index(normalized, ",")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(normalized[:i])
}
