package checks

import (
	"fmt"
	"io"
	"os"

	"github.com/crantools/preflight/internal/descriptor"
	"github.com/crantools/preflight/pkg/config"
)

// Options configures a release-check run.
type Options struct {
	// Out receives the check output. Defaults to os.Stdout.
	Out io.Writer
	// Policy controls optional checks and vignette scanning.
	Policy config.Policy
}

// Sequence returns the checks in their fixed run order. Every check runs
// unconditionally; no outcome affects whether later checks run.
func Sequence(policy config.Policy) []Check {
	checks := []Check{
		VersionFormat{},
		DevDependency{},
		VignetteTitle{
			HeadLines: policy.Vignettes.HeadLines,
			Patterns:  policy.Vignettes.Patterns,
		},
		NewsIgnore{},
		LegacyNews{},
		RemotesField{},
		DocArtifacts{},
	}
	if policy.Checks.GitState {
		checks = append(checks, GitState{})
	}
	return checks
}

// Run loads the package descriptor under pkgPath once and executes the
// release checks against it, reporting each outcome as it happens. The
// returned results cover every non-skipped check, for callers that want to
// aggregate; the run itself is purely advisory and never aborts early.
func Run(pkgPath string, opts Options) ([]Result, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	pkg, err := descriptor.Load(pkgPath)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "Running release checks for %s\n", pkg.Name)

	reporter := NewReporter(out)
	var results []Result
	for _, check := range Sequence(opts.Policy) {
		outcome := runGuarded(check, pkg)
		reporter.Report(check.Name(), outcome)
		if outcome.Status != StatusSkipped {
			results = append(results, Result{
				Name:    check.Name(),
				Status:  outcome.Status,
				Message: outcome.Message,
			})
		}
	}
	return results, nil
}

// runGuarded evaluates a check inside an error boundary so a panicking
// check surfaces as an Errored outcome instead of ending the run.
func runGuarded(check Check, pkg *descriptor.Package) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Errored(fmt.Errorf("check panicked: %v", r))
		}
	}()
	return check.Run(pkg)
}
