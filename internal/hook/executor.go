package hook

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/vyshnavm345/commitgate/pkg/types"
)

const outputTailBytes = 4096

// Executor runs hooks as external black-box processes.
type Executor struct {
	logger  *slog.Logger
	workDir string
}

// NewExecutor creates an executor rooted at the repository working tree.
func NewExecutor(logger *slog.Logger, workDir string) *Executor {
	return &Executor{
		logger:  logger,
		workDir: workDir,
	}
}

// Execute runs one hook against its scoped file slice and produces its
// terminal result. An empty slice yields Skipped without invocation.
// A failed invocation is never retried.
func (e *Executor) Execute(ctx context.Context, spec Spec, files []string) types.Result {
	startTime := time.Now()

	result := types.Result{
		HookID:  spec.ID,
		Outcome: types.OutcomeSkipped,
	}

	if len(files) == 0 {
		e.logger.Debug("no files in scope, skipping hook", "hook", spec.ID)
		result.Duration = time.Since(startTime)
		return result
	}

	// Snapshot file digests so rewrites by the hook can be detected even
	// when the hook itself exits successfully.
	before := e.snapshot(files)

	argv := spec.Command()
	args := append(argv[1:], files...)

	timeoutCtx, cancel := context.WithTimeout(ctx, spec.Timeout)
	defer cancel()

	cmd := exec.CommandContext(timeoutCtx, argv[0], args...)
	cmd.Dir = e.workDir
	cmd.Env = e.environ(spec)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	e.logger.Info("executing hook",
		"hook", spec.ID,
		"entry", argv[0],
		"files", len(files))

	err := cmd.Run()
	result.Duration = time.Since(startTime)
	result.Output = tail(output.Bytes())

	if timeoutCtx.Err() == context.DeadlineExceeded {
		result.Outcome = types.OutcomeFailed
		result.Err = fmt.Errorf("hook %s timed out after %s", spec.ID, spec.Timeout)
		return result
	}

	if err != nil && isStartFailure(err) {
		result.Outcome = types.OutcomeFailed
		result.Err = fmt.Errorf("hook %s could not start: %s; %w", spec.ID, argv[0], err)
		e.logger.Warn("hook invocation failed", "hook", spec.ID, "error", err)
		return result
	}

	modified := e.diffSnapshot(files, before)
	if len(modified) > 0 {
		// A hook that rewrote files blocks the run regardless of its own
		// exit status, so the new content can be reviewed and re-staged.
		result.Outcome = types.OutcomeModified
		result.Modified = modified
		if err != nil {
			result.Err = fmt.Errorf("hook %s failed and rewrote files; %w", spec.ID, err)
		}
		e.logger.Info("hook rewrote files", "hook", spec.ID, "modified", len(modified))
		return result
	}

	if err != nil {
		result.Outcome = types.OutcomeFailed
		result.Err = fmt.Errorf("hook %s reported failures; %w", spec.ID, err)
		return result
	}

	result.Outcome = types.OutcomePassed
	return result
}

// environ extends the process environment with the pinned runtime version
// so wrapper entries can select the right interpreter.
func (e *Executor) environ(spec Spec) []string {
	env := os.Environ()
	if spec.LanguageVersion != "" {
		env = append(env, "COMMITGATE_LANGUAGE_VERSION="+spec.LanguageVersion)
	}
	return env
}

// snapshot records a content digest per path. Missing files digest to the
// empty string so a hook creating or deleting a path registers as a change.
func (e *Executor) snapshot(files []string) map[string]string {
	digests := make(map[string]string, len(files))
	for _, f := range files {
		digests[f] = e.digest(f)
	}
	return digests
}

func (e *Executor) diffSnapshot(files []string, before map[string]string) []string {
	var modified []string
	for _, f := range files {
		if e.digest(f) != before[f] {
			modified = append(modified, f)
		}
	}
	sort.Strings(modified)
	return modified
}

func (e *Executor) digest(path string) string {
	data, err := os.ReadFile(filepath.Join(e.workDir, path))
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// isStartFailure reports whether the error means the hook process never
// ran, as opposed to running and exiting non-zero.
func isStartFailure(err error) bool {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode() == 127
	}
	if _, ok := err.(*exec.Error); ok {
		return true
	}
	if pathErr, ok := err.(*os.PathError); ok {
		return os.IsNotExist(pathErr)
	}
	return false
}

func tail(out []byte) string {
	if len(out) > outputTailBytes {
		out = out[len(out)-outputTailBytes:]
	}
	return string(bytes.TrimSpace(out))
}
