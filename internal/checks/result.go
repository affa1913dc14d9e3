// Package checks implements the release checks preflight runs over an R
// source package, and the reporter that prints their outcomes. All checks
// are read-only and advisory: a failing or erroring check never stops the
// run.
package checks

import "github.com/crantools/preflight/internal/descriptor"

// Status is the three-way outcome of a check. A fourth internal state,
// StatusSkipped, marks checks whose trigger is absent; skipped checks are
// neither run to completion nor reported.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusErrored
	StatusSkipped
)

// String returns the status label used in summary output.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "OK"
	case StatusFailed:
		return "WARNING"
	case StatusErrored:
		return "ERROR"
	case StatusSkipped:
		return "SKIPPED"
	default:
		return "UNKNOWN"
	}
}

// Outcome is what a single check evaluation produces.
type Outcome struct {
	Status  Status
	Message string
}

// Passed returns a passing outcome.
func Passed() Outcome {
	return Outcome{Status: StatusPassed}
}

// Failed returns a failing outcome with the warning message shown to the user.
func Failed(message string) Outcome {
	return Outcome{Status: StatusFailed, Message: message}
}

// Errored returns an outcome for a check that could not be evaluated.
func Errored(err error) Outcome {
	return Outcome{Status: StatusErrored, Message: err.Error()}
}

// Skipped returns an outcome for a check whose trigger is absent.
// The reporter emits nothing for it.
func Skipped() Outcome {
	return Outcome{Status: StatusSkipped}
}

// Result pairs a check name with its outcome for callers that aggregate.
type Result struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the result counts as passing for aggregation.
func (r Result) OK() bool {
	return r.Status == StatusPassed || r.Status == StatusSkipped
}

// AnyFailed reports whether any result failed or errored.
func AnyFailed(results []Result) bool {
	for _, r := range results {
		if !r.OK() {
			return true
		}
	}
	return false
}

// Check is one independent release check. Run must not mutate the package
// or the filesystem.
type Check interface {
	Name() string
	Run(pkg *descriptor.Package) Outcome
}
