package checks

import (
	"fmt"
	"io"
)

// Reporter prints check outcomes as line-oriented text:
//
//	Checking <name>... OK
//	Checking <name>...
//	WARNING: <message>
//	Checking <name>...
//	ERROR: <message>
//
// Skipped checks produce no output at all.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report prints one outcome and returns whether the check passed.
func (r *Reporter) Report(name string, outcome Outcome) bool {
	if outcome.Status == StatusSkipped {
		return true
	}

	fmt.Fprintf(r.out, "Checking %s...", name)
	switch outcome.Status {
	case StatusPassed:
		fmt.Fprint(r.out, " OK\n")
		return true
	case StatusFailed:
		fmt.Fprintf(r.out, "\nWARNING: %s\n", outcome.Message)
		return false
	default:
		fmt.Fprintf(r.out, "\nERROR: %s\n", outcome.Message)
		return false
	}
}
