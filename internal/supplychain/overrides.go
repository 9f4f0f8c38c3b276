package supplychain

import "github.com/SataStrike/Highlighter/pkg/contracts/domain"

// PrefixRule maps a vendor-name substring to a category. Used as the last
// matching resort when a line resembles a known vendor but matches nothing
// in the referential.
type PrefixRule struct {
	Substring string
	Category  domain.Category
}

// Overrides are the operator-maintained business rules that sit outside the
// referential. They exist because a handful of vendors are categorized by
// policy rather than by their referential entries.
type Overrides struct {
	// ForcedVendors short-circuits vendor+ID matching: any line whose bidder
	// prefix equals the key classifies as the mapped category regardless of
	// seller ID. Also applied to otherwise-unmatched lines.
	ForcedVendors map[string]domain.Category

	// ConsensusVendors resolves the vendor-consensus stage for the key
	// vendor regardless of what the referential majority says.
	ConsensusVendors map[string]domain.Category

	// KnownPrefixes is scanned in order; the first substring contained in
	// the normalized line wins.
	KnownPrefixes []PrefixRule
}

// DefaultOverrides returns the production rule set.
func DefaultOverrides() Overrides {
	return Overrides{
		ForcedVendors: map[string]domain.Category{
			"adagio.io": domain.CategoryMaster,
		},
		ConsensusVendors: map[string]domain.Category{
			"smartadserver.com": domain.CategorySecondary,
		},
		KnownPrefixes: []PrefixRule{
			{"adagio", domain.CategoryMaster},

			{"google", domain.CategorySecondary},
			{"doubleclick", domain.CategorySecondary},
			{"freewheel", domain.CategorySecondary},
			{"spotxchange", domain.CategorySecondary},
			{"spotx", domain.CategorySecondary},
			{"adform", domain.CategorySecondary},
			{"media.net", domain.CategorySecondary},
			{"contextweb", domain.CategorySecondary},
			{"taboola", domain.CategorySecondary},
			{"outbrain", domain.CategorySecondary},
			{"vidazoo", domain.CategorySecondary},
			{"smartclip", domain.CategorySecondary},
			{"smaato", domain.CategorySecondary},
			{"rhythmone", domain.CategorySecondary},
		},
	}
}
