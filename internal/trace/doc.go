// Package trace supplies Speed Index measurements to the audit layer.
//
// A Provider resolves one computed measurement (milliseconds) for one
// page. Providers read *computed* metrics artifacts or exposition
// endpoints — raw browser trace events are never parsed here; deriving
// the Speed Index from a trace is the lab runner's job.
//
// Absent or malformed measurements are reported as ErrNotFound so the
// audit layer can degrade to its fixed not-found result instead of
// surfacing a fault.
package trace
