package domain

import "strings"

// Category is the classification bucket for an ads.txt line.
type Category string

const (
	CategoryPrimary   Category = "Primary"
	CategorySecondary Category = "Secondary"
	CategoryMaster    Category = "Master"
	CategoryOther     Category = "Other"
	CategoryUnknown   Category = "Unknown"
)

// categorySynonyms folds the spellings seen in referential exports into the
// canonical categories. MAIN is the historical name for Primary.
var categorySynonyms = map[string]Category{
	"main":      CategoryPrimary,
	"primary":   CategoryPrimary,
	"master":    CategoryMaster,
	"secondary": CategorySecondary,
}

// ParseCategory maps a raw referential category value to its canonical form.
// Unrecognized values pass through with their first letter capitalized so
// they remain visible in audit output; counting treats them as Secondary.
func ParseCategory(raw string) Category {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CategoryUnknown
	}
	if c, ok := categorySynonyms[strings.ToLower(trimmed)]; ok {
		return c
	}
	return Category(strings.ToUpper(trimmed[:1]) + strings.ToLower(trimmed[1:]))
}

// Bucket returns the counting bucket for the category. Referential exports
// occasionally carry ad hoc category names; everything that is not Primary,
// Master, or Unknown counts as Secondary, matching how the reports are read.
func (c Category) Bucket() Category {
	switch c {
	case CategoryPrimary, CategoryMaster, CategoryUnknown:
		return c
	default:
		return CategorySecondary
	}
}

// MatchType records which cascade stage classified a line.
type MatchType string

const (
	MatchExact            MatchType = "exact"
	MatchVendorID         MatchType = "vendor_id"
	MatchAdagioSpecial    MatchType = "adagio_special_case"
	MatchVendorCategory   MatchType = "vendor_category"
	MatchVendorMostCommon MatchType = "vendor_most_common"
	MatchBidder           MatchType = "bidder"
	MatchPrefix           MatchType = "prefix"
	MatchNone             MatchType = "none"
)
