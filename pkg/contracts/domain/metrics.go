package domain

// MetricRow is one row of a performance export (latest or oldest period),
// keyed by website. Values keeps the raw cell text per canonical column name;
// numeric parsing happens in the diff engine so non-numeric cells degrade to
// "no diff" instead of failing the load.
type MetricRow struct {
	Website string            `json:"website"`
	Values  map[string]string `json:"values"`
}

// ErrorRecord is one row of a CSM error export.
type ErrorRecord struct {
	Website      string  `json:"website"`
	CSMError     string  `json:"csm_error"`
	Type         string  `json:"type"`
	AdsTxtReason string  `json:"ads_txt_reason"`
	AdCalls      float64 `json:"ad_calls"`
}
