package supplychain

import (
	"log/slog"
	"strings"

	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

// refLine is one referential entry as stored in the index.
type refLine struct {
	normalized string
	category   domain.Category
}

// vendorIDKey joins a vendor and seller ID into one lookup key.
func vendorIDKey(vendor, sellerID string) string {
	return vendor + "\x00" + sellerID
}

// ReferenceIndex is the referential of canonical ads.txt lines, pre-indexed
// for the match cascade: exact normalized-line lookup, vendor+sellerID
// lookup, and a one-to-many bidder-prefix map for the fuzzy fallbacks.
type ReferenceIndex struct {
	exact      map[string]domain.Category
	byVendorID map[string]domain.Category
	byBidder   map[string][]refLine
}

// BuildIndex constructs a ReferenceIndex from referential entries. Entries
// missing a line or category are skipped; duplicate normalized lines are
// last-write-wins since the referential is assumed deduplicated upstream.
func BuildIndex(entries []domain.ReferenceEntry, logger *slog.Logger) *ReferenceIndex {
	if logger == nil {
		logger = slog.Default()
	}

	idx := &ReferenceIndex{
		exact:      make(map[string]domain.Category, len(entries)),
		byVendorID: make(map[string]domain.Category, len(entries)),
		byBidder:   make(map[string][]refLine),
	}

	skipped := 0
	for _, entry := range entries {
		if strings.TrimSpace(entry.RawLine) == "" || strings.TrimSpace(entry.Category) == "" {
			skipped++
			continue
		}
		category := domain.ParseCategory(entry.Category)
		normalized := Normalize(entry.RawLine)
		if normalized == "" {
			skipped++
			continue
		}

		idx.exact[normalized] = category

		if bidder := bidderPrefix(normalized); bidder != "" {
			idx.byBidder[bidder] = append(idx.byBidder[bidder], refLine{normalized: normalized, category: category})

			parts := strings.Split(normalized, ",")
			if len(parts) >= 2 {
				sellerID := strings.TrimSpace(parts[1])
				idx.byVendorID[vendorIDKey(bidder, sellerID)] = category
			}
		}
	}

	logger.Debug("reference index built",
		slog.Int("entries", len(idx.exact)),
		slog.Int("bidders", len(idx.byBidder)),
		slog.Int("skipped", skipped))
	return idx
}

// Exact looks up a normalized line in the exact-match map.
func (idx *ReferenceIndex) Exact(normalized string) (domain.Category, bool) {
	c, ok := idx.exact[normalized]
	return c, ok
}

// VendorID looks up a (vendor, seller ID) pair.
func (idx *ReferenceIndex) VendorID(vendor, sellerID string) (domain.Category, bool) {
	c, ok := idx.byVendorID[vendorIDKey(vendor, sellerID)]
	return c, ok
}

// BidderEntries returns the referential lines registered for a bidder
// prefix, in referential order.
func (idx *ReferenceIndex) BidderEntries(bidder string) []refLine {
	return idx.byBidder[bidder]
}

// Len returns the number of distinct normalized lines in the index.
func (idx *ReferenceIndex) Len() int { return len(idx.exact) }
