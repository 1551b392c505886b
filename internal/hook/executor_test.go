package hook

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vyshnavm345/commitgate/pkg/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeScript drops an executable shell script into dir and returns the
// entry that invokes it.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
	return "sh " + name
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func testSpec(id, entry string) Spec {
	return Spec{ID: id, Entry: entry, Timeout: 10 * time.Second}
}

func TestExecutePassed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello\n")
	entry := writeScript(t, dir, "check.sh", "exit 0\n")

	e := NewExecutor(discardLogger(), dir)
	result := e.Execute(context.Background(), testSpec("check", entry), []string{"a.txt"})

	if result.Outcome != types.OutcomePassed {
		t.Errorf("Outcome = %q, want %q (output: %s, err: %v)", result.Outcome, types.OutcomePassed, result.Output, result.Err)
	}
}

func TestExecuteFailed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello\n")
	entry := writeScript(t, dir, "check.sh", "echo 'a.txt:1: style violation'\nexit 1\n")

	e := NewExecutor(discardLogger(), dir)
	result := e.Execute(context.Background(), testSpec("check", entry), []string{"a.txt"})

	if result.Outcome != types.OutcomeFailed {
		t.Fatalf("Outcome = %q, want %q", result.Outcome, types.OutcomeFailed)
	}
	if result.Err == nil {
		t.Error("Err = nil, want content violation error")
	}
	if !strings.Contains(result.Output, "style violation") {
		t.Errorf("Output = %q, want captured hook output", result.Output)
	}
}

func TestExecuteSkippedOnEmptyScope(t *testing.T) {
	dir := t.TempDir()
	entry := writeScript(t, dir, "check.sh", "exit 1\n")

	e := NewExecutor(discardLogger(), dir)
	result := e.Execute(context.Background(), testSpec("check", entry), nil)

	if result.Outcome != types.OutcomeSkipped {
		t.Errorf("Outcome = %q, want %q", result.Outcome, types.OutcomeSkipped)
	}
}

func TestExecuteModified(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "no trailing newline")
	// A fixer that appends the missing newline and exits 0.
	entry := writeScript(t, dir, "fix.sh", "for f in \"$@\"; do echo >> \"$f\"; done\nexit 0\n")

	e := NewExecutor(discardLogger(), dir)
	result := e.Execute(context.Background(), testSpec("end-of-file-fixer", entry), []string{"a.txt"})

	if result.Outcome != types.OutcomeModified {
		t.Fatalf("Outcome = %q, want %q", result.Outcome, types.OutcomeModified)
	}
	if len(result.Modified) != 1 || result.Modified[0] != "a.txt" {
		t.Errorf("Modified = %v, want [a.txt]", result.Modified)
	}
}

func TestExecuteModifiedTakesPrecedenceOverExitCode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")
	entry := writeScript(t, dir, "fix.sh", "echo fixed >> a.txt\nexit 1\n")

	e := NewExecutor(discardLogger(), dir)
	result := e.Execute(context.Background(), testSpec("fixer", entry), []string{"a.txt"})

	if result.Outcome != types.OutcomeModified {
		t.Errorf("Outcome = %q, want %q", result.Outcome, types.OutcomeModified)
	}
	if result.Err == nil {
		t.Error("Err = nil, want failure preserved alongside modification")
	}
}

func TestExecuteUntouchedFilesNotReported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")
	writeFile(t, dir, "b.txt", "y")
	entry := writeScript(t, dir, "fix.sh", "echo z >> a.txt\nexit 0\n")

	e := NewExecutor(discardLogger(), dir)
	result := e.Execute(context.Background(), testSpec("fixer", entry), []string{"a.txt", "b.txt"})

	if len(result.Modified) != 1 || result.Modified[0] != "a.txt" {
		t.Errorf("Modified = %v, want [a.txt]", result.Modified)
	}
}

func TestExecuteInvocationError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")

	spec := testSpec("ghost", "commitgate-test-no-such-binary")
	e := NewExecutor(discardLogger(), dir)
	result := e.Execute(context.Background(), spec, []string{"a.txt"})

	if result.Outcome != types.OutcomeFailed {
		t.Fatalf("Outcome = %q, want %q", result.Outcome, types.OutcomeFailed)
	}
	if result.Err == nil || !strings.Contains(result.Err.Error(), "could not start") {
		t.Errorf("Err = %v, want invocation error", result.Err)
	}
}

func TestExecuteTimeout(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")
	entry := writeScript(t, dir, "slow.sh", "sleep 5\n")

	spec := testSpec("slow", entry)
	spec.Timeout = 100 * time.Millisecond

	e := NewExecutor(discardLogger(), dir)
	result := e.Execute(context.Background(), spec, []string{"a.txt"})

	if result.Outcome != types.OutcomeFailed {
		t.Fatalf("Outcome = %q, want %q", result.Outcome, types.OutcomeFailed)
	}
	if result.Err == nil || !strings.Contains(result.Err.Error(), "timed out") {
		t.Errorf("Err = %v, want timeout error", result.Err)
	}
}

func TestExecuteEntryDefaultsToID(t *testing.T) {
	spec := Spec{ID: "true", Timeout: 5 * time.Second}

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")

	e := NewExecutor(discardLogger(), dir)
	result := e.Execute(context.Background(), spec, []string{"a.txt"})

	if result.Outcome != types.OutcomePassed {
		t.Errorf("Outcome = %q, want %q", result.Outcome, types.OutcomePassed)
	}
}

func TestCommandSplitsEntry(t *testing.T) {
	spec := Spec{ID: "ruff", Entry: "ruff check", Args: []string{"--fix"}}

	got := spec.Command()
	want := []string{"ruff", "check", "--fix"}
	if len(got) != len(want) {
		t.Fatalf("Command() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Command()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
