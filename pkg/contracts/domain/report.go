package domain

// ReportRow is one record of the supply-chain report as loaded from the
// spreadsheet. MissingLinesText is the free-text cell that may carry zero or
// more ads.txt entries in mixed formats; Bidder is only set when the report
// carries a dedicated bidder column.
type ReportRow struct {
	Status           string `json:"status"`
	Platform         string `json:"platform"`
	Name             string `json:"name"`
	Domain           string `json:"domain"`
	StatusCode       string `json:"status_code"`
	MissingLinesText string `json:"missing_lines_text"`
	Bidder           string `json:"bidder,omitempty"`
}

// ReferenceEntry is one row of the canonical ads.txt lines referential.
// Category carries the raw spreadsheet value; synonym folding happens when
// the reference index is built.
type ReferenceEntry struct {
	RawLine  string `json:"raw_line"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// Classification is the outcome of matching one candidate line against the
// referential. Line keeps the original report text, not the normalized form,
// so audit output stays readable.
type Classification struct {
	Line     string    `json:"line"`
	Category Category  `json:"category"`
	Match    MatchType `json:"match_type"`
}
