package scanner

// ScanPayload is the record decoded from the assessment API response. Fields
// the API may omit (grade, details_url, algorithm_version, error) simply stay
// zero; the formatters render explicit fallbacks instead of guessing here.
// Score can exceed 100 or go negative, both allowed by the API's bonus and
// penalty rules.
type ScanPayload struct {
	Host             string `json:"host,omitempty"`
	Grade            string `json:"grade,omitempty"`
	Score            int    `json:"score"`
	TestsPassed      int    `json:"tests_passed"`
	TestsQuantity    int    `json:"tests_quantity"`
	TestsFailed      int    `json:"tests_failed"`
	ScannedAt        string `json:"scanned_at,omitempty"`
	DetailsURL       string `json:"details_url,omitempty"`
	AlgorithmVersion int    `json:"algorithm_version,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Response couples the HTTP status with the decoded payload. Callers own the
// status policy: the client reports what came back, the Runner decides what
// counts as a failure.
type Response struct {
	StatusCode int
	Payload    ScanPayload
}
