package response

// ImportSummary reports the per-row outcome of a CSV batch. Row failures are
// counted, never fatal.
type ImportSummary struct {
	Inserted int `json:"inserted"`
	Errors   int `json:"errors"`
	Total    int `json:"total"`
}
