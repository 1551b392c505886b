// Package runner orchestrates a full hook run: it resolves the file set,
// schedules hook executions, aggregates results, and decides the verdict.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vyshnavm345/commitgate/internal/config"
	"github.com/vyshnavm345/commitgate/internal/fileset"
	"github.com/vyshnavm345/commitgate/internal/gitrepo"
	"github.com/vyshnavm345/commitgate/internal/hook"
	"github.com/vyshnavm345/commitgate/internal/manifest"
	"github.com/vyshnavm345/commitgate/internal/state"
	"github.com/vyshnavm345/commitgate/pkg/types"
)

// ErrBlocked is returned to the command layer when the run verdict is
// Block, so the triggering operation can be refused with a non-zero exit.
var ErrBlocked = errors.New("run blocked the triggering operation")

// hookExecutor abstracts hook execution for tests.
type hookExecutor interface {
	Execute(ctx context.Context, spec hook.Spec, files []string) types.Result
}

// Options select what a single run covers.
type Options struct {
	Mode  types.Mode
	Files []string // explicit file list, overrides mode resolution
	Hooks []string // restrict execution to these hook ids
}

// Runner executes one run at a time against a repository.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	exec   hookExecutor
}

// New creates a runner using the given executor.
func New(cfg *config.Config, logger *slog.Logger, exec hookExecutor) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: logger,
		exec:   exec,
	}
}

// Run performs a complete run and returns its report. The repository lock
// guarantees at most one run per repository at a time.
func (r *Runner) Run(ctx context.Context, m *manifest.Manifest, repo gitrepo.Repository, opts Options) (types.Report, error) {
	report := types.Report{
		RunID:   uuid.NewString(),
		Mode:    opts.Mode,
		Started: time.Now(),
	}

	gitDir, err := repo.GitDir()
	if err != nil {
		return report, err
	}

	lock, err := acquireRunLock(gitDir)
	if err != nil {
		return report, err
	}
	defer lock.release()

	store := state.NewStore(gitDir)
	marker, err := store.Load()
	if err != nil {
		return report, err
	}

	files, err := fileset.NewResolver(repo, marker).Resolve(opts.Mode, opts.Files)
	if err != nil {
		return report, err
	}

	r.logger.Info("run started",
		"run_id", report.RunID,
		"mode", opts.Mode,
		"files", len(files))

	specs := hook.SpecsFromManifest(m, time.Duration(r.cfg.Hooks.TimeoutSeconds)*time.Second)
	specs, err = selectHooks(specs, opts.Hooks)
	if err != nil {
		return report, err
	}

	report.Results = r.executeAll(ctx, specs, files)
	report.Aborted = ctx.Err() != nil
	report.Verdict = ComputeVerdict(report.Results, report.Aborted)
	report.Elapsed = time.Since(report.Started)

	r.logger.Info("run finished",
		"run_id", report.RunID,
		"verdict", report.Verdict,
		"aborted", report.Aborted,
		"elapsed", report.Elapsed)

	// A clean unrestricted run advances the marker so the next changed-only
	// run starts from here. Restricted runs exercise only part of the
	// configuration and must not claim success for the rest.
	if report.Verdict == types.VerdictAllow && len(opts.Hooks) == 0 && len(opts.Files) == 0 {
		head, err := repo.Head()
		if err != nil {
			return report, err
		}
		if head != "" {
			err = store.Save(state.Marker{
				RunID:     report.RunID,
				Head:      head,
				Timestamp: time.Now(),
			})
			if err != nil {
				return report, err
			}
		}
	}

	return report, nil
}

// executeAll schedules every spec and collects exactly one result per spec,
// ordered by configuration position regardless of completion order.
//
// Hooks run concurrently up to the configured worker limit, except that a
// hook whose scoped files overlap an earlier hook's files waits for that
// hook to finish. Two mutating hooks therefore never race on the same path,
// and they apply in configuration order.
func (r *Runner) executeAll(ctx context.Context, specs []hook.Spec, files types.FileSet) []types.Result {
	n := len(specs)
	results := make([]types.Result, n)

	scoped := make([][]string, n)
	for i, spec := range specs {
		scoped[i] = spec.Scope(files)
	}
	waits := overlapWaits(scoped)

	jobs := r.cfg.Run.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	sem := make(chan struct{}, jobs)

	done := make([]chan struct{}, n)
	for i := range done {
		done[i] = make(chan struct{})
	}

	var wg sync.WaitGroup
	for i := range specs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer close(done[idx])

			for _, dep := range waits[idx] {
				select {
				case <-done[dep]:
				case <-ctx.Done():
				}
			}

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = interruptedResult(specs[idx].ID, ctx.Err())
				return
			}

			if ctx.Err() != nil {
				results[idx] = interruptedResult(specs[idx].ID, ctx.Err())
				return
			}

			results[idx] = r.exec.Execute(ctx, specs[idx], scoped[idx])
		}(i)
	}
	wg.Wait()

	return results
}

// interruptedResult stands in for a hook the run never got to execute
// before cancellation. The aborted flag on the report forces Block.
func interruptedResult(id string, cause error) types.Result {
	return types.Result{
		HookID:  id,
		Outcome: types.OutcomeSkipped,
		Err:     fmt.Errorf("run interrupted before hook executed; %w", cause),
	}
}

// overlapWaits computes, for each hook, the earlier hooks it must wait for
// because their scoped file slices intersect.
func overlapWaits(scoped [][]string) [][]int {
	waits := make([][]int, len(scoped))

	owners := make(map[string][]int)
	for i, files := range scoped {
		depSet := make(map[int]struct{})
		for _, f := range files {
			for _, owner := range owners[f] {
				depSet[owner] = struct{}{}
			}
			owners[f] = append(owners[f], i)
		}
		for dep := range depSet {
			waits[i] = append(waits[i], dep)
		}
	}

	return waits
}

// selectHooks restricts specs to the requested ids, preserving manifest
// order. Unknown ids are an error so typos surface instead of silently
// running nothing.
func selectHooks(specs []hook.Spec, ids []string) ([]hook.Spec, error) {
	if len(ids) == 0 {
		return specs, nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = false
	}

	var selected []hook.Spec
	for _, spec := range specs {
		if _, ok := wanted[spec.ID]; ok {
			wanted[spec.ID] = true
			selected = append(selected, spec)
		}
	}

	for id, found := range wanted {
		if !found {
			return nil, fmt.Errorf("no hook with id %q in the manifest", id)
		}
	}

	return selected, nil
}
