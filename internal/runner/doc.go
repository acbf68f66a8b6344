// Package runner drives the audit across the configured pages.
//
// A Runner builds one measurement provider per page, audits every page
// on demand, and stamps each outcome with a run ID so report consumers
// can correlate entries. In watch mode it re-audits a page whenever its
// file-backed measurement source changes on disk. A page whose
// measurement cannot be resolved yields a failure-shaped result; it
// never aborts the run.
package runner
