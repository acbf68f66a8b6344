// Package report defines the shared result types handed to a reporting
// layer. These are the canonical in-memory representations of an audit
// outcome, separate from any presentation format.
package report
