// Package audit scores a page's visual-loading performance from its
// Speed Index measurement.
//
// ComputeScore is the whole surface: obtain the measurement from a
// trace.Provider, map it through the fixed log-normal scoring curve,
// clamp and round to an integer in [0,100]. Every failure along the way
// — missing measurement, malformed input, a misbehaving provider — is
// converted into a structured failure result (score -1 plus a message).
// ComputeScore never returns an error and never panics, so the caller
// always has a result to report.
package audit
