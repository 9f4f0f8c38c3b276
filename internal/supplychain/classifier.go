package supplychain

import (
	"strings"

	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

// fuzzyThreshold is the minimum prefix-similarity score for the bidder
// fallback stage to accept a referential line.
const fuzzyThreshold = 0.70

// Classifier matches candidate lines against a ReferenceIndex through a
// cascade of strategies, most trustworthy first: exact text, vendor plus
// seller ID, vendor consensus, fuzzy bidder similarity, then known vendor
// prefixes. The cascade exists because report cells carry typos, reordered
// fields, and missing certificate IDs that defeat exact matching while the
// vendor name stays legible.
type Classifier struct {
	index *ReferenceIndex
	rules Overrides
}

// NewClassifier builds a classifier over the given index with the production
// override rules.
func NewClassifier(index *ReferenceIndex) *Classifier {
	return &Classifier{index: index, rules: DefaultOverrides()}
}

// NewClassifierWithOverrides builds a classifier with a custom rule set.
func NewClassifierWithOverrides(index *ReferenceIndex, rules Overrides) *Classifier {
	return &Classifier{index: index, rules: rules}
}

// Classify runs the match cascade for one candidate line. Deterministic and
// pure for a fixed index; the first successful stage wins.
func (c *Classifier) Classify(line string) domain.Classification {
	normalized := Normalize(line)
	if normalized == "" {
		return domain.Classification{Line: line, Category: domain.CategoryUnknown, Match: domain.MatchNone}
	}

	// Stage 1: exact normalized-line match.
	if category, ok := c.index.Exact(normalized); ok {
		return domain.Classification{Line: line, Category: category.Bucket(), Match: domain.MatchExact}
	}

	vendor, sellerID, hasPair := splitVendorID(normalized)

	// Stage 2: vendor plus seller ID.
	if hasPair {
		if forced, ok := c.rules.ForcedVendors[vendor]; ok {
			return domain.Classification{Line: line, Category: forced, Match: domain.MatchAdagioSpecial}
		}
		if category, ok := c.index.VendorID(vendor, sellerID); ok {
			return domain.Classification{Line: line, Category: category.Bucket(), Match: domain.MatchVendorID}
		}

		// Stage 3: vendor consensus over all referential lines for this vendor.
		if entries := c.index.BidderEntries(vendor); len(entries) > 0 {
			return c.classifyByConsensus(line, vendor, entries)
		}
	}

	// Stage 4: fuzzy similarity against the vendor's referential lines.
	if bidder := bidderPrefix(normalized); bidder != "" {
		if result, ok := c.classifyByFuzzy(line, normalized, bidder); ok {
			return result
		}
	}

	// Stage 5: known vendor-name prefixes.
	for _, rule := range c.rules.KnownPrefixes {
		if strings.Contains(normalized, rule.Substring) {
			return domain.Classification{Line: line, Category: rule.Category, Match: domain.MatchPrefix}
		}
	}

	// Unmatched. Forced vendors still win even without a referential hit.
	if bidder := bidderPrefix(normalized); bidder != "" {
		if forced, ok := c.rules.ForcedVendors[bidder]; ok {
			return domain.Classification{Line: line, Category: forced, Match: domain.MatchNone}
		}
	}
	return domain.Classification{Line: line, Category: domain.CategoryUnknown, Match: domain.MatchNone}
}

// classifyByConsensus resolves a vendor whose seller ID is not in the
// referential by looking at every line registered for that vendor. Unanimous
// vendors use their single category. Split vendors default conservatively to
// Secondary unless Primary dominates by 3x (or three-plus Primary entries
// with no Secondary at all), in which case any Master entry outranks Primary.
func (c *Classifier) classifyByConsensus(line, vendor string, entries []refLine) domain.Classification {
	if forced, ok := c.rules.ConsensusVendors[vendor]; ok {
		return domain.Classification{Line: line, Category: forced, Match: domain.MatchVendorMostCommon}
	}

	counts := make(map[domain.Category]int, 4)
	for _, e := range entries {
		counts[e.category]++
	}
	if len(counts) == 1 {
		return domain.Classification{Line: line, Category: entries[0].category.Bucket(), Match: domain.MatchVendorCategory}
	}

	primary := counts[domain.CategoryPrimary]
	secondary := counts[domain.CategorySecondary]

	useSecondary := true
	switch {
	case primary > 0 && secondary > 0 && primary >= 3*secondary:
		useSecondary = false
	case primary > 0 && secondary == 0 && primary >= 3:
		useSecondary = false
	}

	category := domain.CategorySecondary
	if !useSecondary {
		category = domain.CategoryPrimary
		if counts[domain.CategoryMaster] > 0 {
			category = domain.CategoryMaster
		}
	}
	return domain.Classification{Line: line, Category: category, Match: domain.MatchVendorMostCommon}
}

// classifyByFuzzy scores the candidate against every referential line for
// its bidder as common-leading-prefix length over the longer string's
// length, accepting the best score above the threshold.
func (c *Classifier) classifyByFuzzy(line, normalized, bidder string) (domain.Classification, bool) {
	entries := c.index.BidderEntries(bidder)
	if len(entries) == 0 {
		return domain.Classification{}, false
	}

	var best *refLine
	bestScore := 0.0
	for i := range entries {
		score := prefixSimilarity(normalized, entries[i].normalized)
		if score > bestScore && score > fuzzyThreshold {
			bestScore = score
			best = &entries[i]
		}
	}
	if best == nil {
		return domain.Classification{}, false
	}
	return domain.Classification{Line: line, Category: best.category.Bucket(), Match: domain.MatchBidder}, true
}

// splitVendorID extracts the vendor and seller ID fields from a normalized
// line of the shape "vendor, sellerID[, ...]".
func splitVendorID(normalized string) (vendor, sellerID string, ok bool) {
	if !strings.Contains(normalized, ",") {
		return "", "", false
	}
	parts := strings.Split(normalized, ",")
	if len(parts) < 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// prefixSimilarity is the length of the common leading run of bytes divided
// by the length of the longer string.
func prefixSimilarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	common := 0
	for common < len(a) && common < len(b) && a[common] == b[common] {
		common++
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	return float64(common) / float64(longer)
}
