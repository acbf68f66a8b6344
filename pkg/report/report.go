package report

// FailureScore is the sentinel score for an audit that could not produce
// a measurement-backed result.
const FailureScore = -1

// Meta is the static descriptive metadata for one audit. It never changes
// at runtime; the reporting layer uses it to label results.
type Meta struct {
	Category     string `json:"category"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	OptimalValue string `json:"optimalValue"`
}

// Result is the outcome of a single audit invocation.
//
// Exactly one of two shapes is produced: a success with Score in [0,100]
// and a non-nil RawValue, or a failure with Score == FailureScore and a
// non-empty DebugMessage. There is no partial success.
type Result struct {
	// Score is the normalized quality score, 0–100, or FailureScore.
	Score int `json:"score"`

	// RawValue is the rounded measurement in milliseconds. Nil on failure.
	RawValue *int64 `json:"rawValue,omitempty"`

	// DisplayValue is the human-readable rendering of RawValue,
	// e.g. "5,500 ms". Empty on failure.
	DisplayValue string `json:"displayValue,omitempty"`

	// DebugMessage explains why the audit failed. Empty on success.
	DebugMessage string `json:"debugString,omitempty"`
}

// Failed reports whether r carries the failure shape.
func (r Result) Failed() bool {
	return r.Score == FailureScore
}
