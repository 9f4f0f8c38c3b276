package domain

import "strconv"

// NoMissingBidders is the sentinel written to the bidders column when a
// domain has no missing primary lines.
const NoMissingBidders = "No missing bidders"

// DomainSummary is the aggregate reconciliation result for one
// (domain, publisher name) pair. Line fields hold the raw report text of the
// classified lines joined with ", "; repeated rows for the same key append to
// them rather than replace.
type DomainSummary struct {
	Domain                string `json:"domain" csv:"Domain"`
	Name                  string `json:"name" csv:"Name"`
	Status                string `json:"status" csv:"Status"`
	MasterMissing         int    `json:"master_missing" csv:"Master Missing"`
	PrimaryMissing        int    `json:"primary_missing" csv:"Primary Missing"`
	SecondaryMissing      int    `json:"secondary_missing" csv:"Secondary Missing"`
	TotalMissing          int    `json:"total_missing" csv:"Total Missing"`
	UnknownLines          int    `json:"unknown_lines" csv:"Unknown Lines"`
	MasterLines           string `json:"master_lines" csv:"Master Lines"`
	PrimaryLines          string `json:"primary_lines" csv:"Primary Lines"`
	SecondaryLines        string `json:"secondary_lines" csv:"Secondary Lines"`
	UnknownLinesText      string `json:"unknown_lines_text" csv:"Unknown Lines Text"`
	MissingPrimaryBidders string `json:"missing_primary_bidders" csv:"Missing Primary Bidders"`
}

// Key returns the aggregation key. Two rows with the same domain but
// different publisher names stay distinct on purpose; the report granularity
// is one row per (domain, name).
func (s DomainSummary) Key() string {
	return s.Domain + "_" + s.Name
}

// SummaryHeader is the output column set, in spreadsheet order.
func SummaryHeader() []string {
	return []string{
		"Domain", "Name", "Status",
		"Master Missing", "Primary Missing", "Secondary Missing", "Total Missing",
		"Unknown Lines",
		"Master Lines", "Primary Lines", "Secondary Lines", "Unknown Lines Text",
		"Missing Primary Bidders",
	}
}

// Record renders the summary as one CSV record matching SummaryHeader.
func (s DomainSummary) Record() []string {
	return []string{
		s.Domain, s.Name, s.Status,
		strconv.Itoa(s.MasterMissing),
		strconv.Itoa(s.PrimaryMissing),
		strconv.Itoa(s.SecondaryMissing),
		strconv.Itoa(s.TotalMissing),
		strconv.Itoa(s.UnknownLines),
		s.MasterLines, s.PrimaryLines, s.SecondaryLines, s.UnknownLinesText,
		s.MissingPrimaryBidders,
	}
}
