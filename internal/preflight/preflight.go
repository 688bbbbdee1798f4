package preflight

import (
	"mkvdefault/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// Blocking reports whether a failed result should stop a run.
func (r Result) Blocking() bool {
	return !r.Passed && !r.Optional
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckDirectoryAccess("Scan directory", cfg.Scan.Directory)}
	for _, status := range CheckTools(cfg) {
		results = append(results, toolResult(status))
	}
	return results
}

// Failures returns the blocking results.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Blocking() {
			failed = append(failed, r)
		}
	}
	return failed
}
