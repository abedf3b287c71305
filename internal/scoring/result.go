package scoring

// Verdict codes the API can return. Unknown codes must still render, so
// consumers treat these as hints, not an exhaustive set.
const (
	VerdictLikelyUnderpaid   = "likely_underpaid"
	VerdictPossiblyUnderpaid = "possibly_underpaid"
	VerdictFairlyPaid        = "fairly_paid"
	VerdictFairlyOverpaid    = "fairly_overpaid"
)

// Result is a parsed assessment response.
type Result struct {
	Version     string      `json:"version,omitempty"`
	Score       int         `json:"score"`
	Verdict     string      `json:"verdict"`
	VerdictCode string      `json:"verdict_code"`
	Confidence  string      `json:"confidence"`
	SalaryRange SalaryRange `json:"salary_range"`
	Reasons     []string    `json:"reasons"`
	DataUpdated string      `json:"data_updated"`
	Disclaimer  string      `json:"disclaimer"`
	Breakdown   *Breakdown  `json:"score_breakdown,omitempty"`

	// Error is set by the service on failure responses.
	Error string `json:"error,omitempty"`
}

// SalaryRange is the estimated market range, pre-formatted by the service in
// the country's currency.
type SalaryRange struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Currency     string  `json:"currency"`
	FormattedMin string  `json:"formatted_min"`
	FormattedMax string  `json:"formatted_max"`
}

// Breakdown itemizes the score components when the service includes them.
type Breakdown struct {
	Market      float64 `json:"market"`
	Experience  float64 `json:"experience"`
	Skills      float64 `json:"skills"`
	Company     float64 `json:"company"`
	Progression float64 `json:"progression"`
	Timing      float64 `json:"timing"`
	Baseline    float64 `json:"baseline"`
}
