package types

import "time"

// Mode selects which files a run applies to.
type Mode string

const (
	// ModeChangedOnly restricts a run to files changed since the last
	// successful run marker. This is the mode the installed git hook uses.
	ModeChangedOnly Mode = "changed"

	// ModeAllFiles applies a run to every file tracked by the repository.
	ModeAllFiles Mode = "all-files"
)

// FileSet is the resolved list of paths a run applies to. Paths are
// repository-relative, deduplicated, and sorted.
type FileSet []string

// Outcome is the terminal state of a single hook execution.
type Outcome string

const (
	OutcomePassed   Outcome = "passed"
	OutcomeFailed   Outcome = "failed"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeModified Outcome = "modified"
)

// Verdict is the binary decision gating the triggering operation.
type Verdict string

const (
	VerdictAllow Verdict = "allow"
	VerdictBlock Verdict = "block"
)

// Result is the outcome of running one hook against a file set.
// Exactly one Result is produced per configured hook per run.
type Result struct {
	HookID   string        // Hook identifier from the manifest
	Outcome  Outcome       // Terminal outcome
	Modified []string      // Paths the hook rewrote, set when Outcome is OutcomeModified
	Output   string        // Captured stdout/stderr tail from the hook process
	Err      error         // Invocation or content error, if any
	Duration time.Duration // Wall-clock execution time
}

// Report is the aggregate outcome of one run.
type Report struct {
	RunID   string   // Unique identifier for this run
	Mode    Mode     // File-set mode the run used
	Results []Result // One per configured hook, in manifest order
	Verdict Verdict  // Overall allow/block decision
	Aborted bool     // True when the run was interrupted before completion
	Started time.Time
	Elapsed time.Duration
}

// ModifiedPaths returns the union of paths rewritten by any hook in the run.
func (r Report) ModifiedPaths() []string {
	seen := make(map[string]struct{})
	var paths []string
	for _, result := range r.Results {
		for _, p := range result.Modified {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	return paths
}
