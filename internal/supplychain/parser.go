package supplychain

import (
	"regexp"
	"strings"
)

var (
	// Newline variants, including literal backslash-n sequences that survive
	// spreadsheet exports.
	newlineVariantsRE = regexp.MustCompile(`\r\n|\r|\\n`)
	newlinePaddingRE  = regexp.MustCompile(`\s*\n\s*`)
	commaPaddingRE    = regexp.MustCompile(`\s*,\s*`)

	// Leading bullet points or numbering on multiline entries.
	bulletPrefixRE    = regexp.MustCompile(`^[•\-\d.\s]+`)
	numberingPrefixRE = regexp.MustCompile(`^\d+\.?\s*`)

	// A full ads.txt entry: domain, seller ID, relationship, optional
	// certificate authority ID.
	adsEntryRE  = regexp.MustCompile(`(?i)^([\w.\-]+\.\w+)\s*,\s*(\w+)\s*,\s*(RESELLER|DIRECT)(?:\s*,\s*[\w\d]+)?`)
	adsSearchRE = regexp.MustCompile(`(?i)([\w.\-]+\.\w+)\s*,\s*(\w+)\s*,\s*(RESELLER|DIRECT)(?:\s*,\s*[\w\d]+)?`)

	// A domain-shaped token at the start of a fragment.
	domainPrefixRE = regexp.MustCompile(`^[\w.\-]+\.\w+`)
	pureNumberRE   = regexp.MustCompile(`^\d+$`)
)

// ParseMissingLines splits one free-text report cell into candidate ads.txt
// lines, in first-seen order. The cell formats in the wild are inconsistent:
// newline-separated lists with bullets, semicolon lists, inline runs of full
// entries, comma-split single entries, and bare vendor names. The first rule
// matching the overall shape of the cell wins.
func ParseMissingLines(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.EqualFold(trimmed, "web") {
		return nil
	}

	// Canonicalize newlines and comma spacing before shape detection.
	text = newlineVariantsRE.ReplaceAllString(text, "\n")
	text = newlinePaddingRE.ReplaceAllString(text, "\n")
	text = commaPaddingRE.ReplaceAllString(text, ", ")
	text = strings.TrimSpace(text)

	var lines []string

	if strings.Contains(text, "\n") {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			line = strings.TrimSpace(bulletPrefixRE.ReplaceAllString(line, ""))
			if line != "" {
				lines = appendCandidate(lines, line)
			}
		}
		return lines
	}

	if strings.Contains(text, ";") {
		for _, item := range strings.Split(text, ";") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			item = strings.TrimSpace(numberingPrefixRE.ReplaceAllString(item, ""))
			if item != "" {
				lines = appendCandidate(lines, item)
			}
		}
		return lines
	}

	// Inline entries: one or more full ads.txt patterns embedded in prose.
	if matches := adsSearchRE.FindAllString(text, -1); len(matches) > 0 {
		for _, m := range matches {
			lines = append(lines, strings.TrimSpace(m))
		}
		return lines
	}

	if strings.Contains(text, ",") {
		parts := strings.Split(text, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		// Three or four parts with a RESELLER/DIRECT keyword is a single
		// entry that merely lacks the domain shape the pattern expects.
		if (len(parts) == 3 || len(parts) == 4) && containsRelationship(parts) {
			return append(lines, text)
		}
		for _, part := range parts {
			if part != "" && !pureNumberRE.MatchString(part) {
				lines = append(lines, part)
			}
		}
		return lines
	}

	return append(lines, text)
}

// appendCandidate applies the fragment acceptance rules to one line reached
// through the multiline or semicolon paths, appending it when it plausibly
// carries an ads.txt entry and dropping it silently otherwise.
func appendCandidate(lines []string, line string) []string {
	if adsEntryRE.MatchString(line) {
		return append(lines, line)
	}
	if domainPrefixRE.MatchString(line) {
		// At least a domain, with or without further structure.
		return append(lines, line)
	}
	if containsRelationship(strings.Fields(line)) {
		return append(lines, line)
	}
	words := strings.Fields(line)
	if len(words) <= 2 && !isAllDigits(line) {
		return append(lines, line)
	}
	if len(words) >= 2 && !isAllDigits(line) {
		return append(lines, line)
	}
	return lines
}

func containsRelationship(parts []string) bool {
	for _, p := range parts {
		switch strings.ToUpper(p) {
		case "RESELLER", "DIRECT":
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
