// Package gitrepo provides the repository state handle used by the
// file-set resolver and the installer.
package gitrepo

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repository is the abstract handle over repository state. The file-set
// resolver and installer depend on this interface so they can be tested
// against a fake without a real repository on disk.
type Repository interface {
	// Root returns the repository working tree root.
	Root() string

	// GitDir returns the absolute path of the .git directory.
	GitDir() (string, error)

	// Head returns the current HEAD commit hash. Returns an empty string
	// on a repository with no commits.
	Head() (string, error)

	// StagedFiles lists paths staged for commit (added, copied, modified).
	StagedFiles() ([]string, error)

	// ChangedSince lists paths added, copied, or modified in the working
	// tree relative to the given revision.
	ChangedSince(rev string) ([]string, error)

	// TrackedFiles lists every path tracked by the repository.
	TrackedFiles() ([]string, error)
}

// Git is a Repository backed by the git binary.
type Git struct {
	binary  string
	workDir string
}

// Open locates the repository containing dir and returns a handle to it.
// Fails when dir is not inside a git working tree.
func Open(binary, dir string) (*Git, error) {
	g := &Git{binary: binary, workDir: dir}

	root, err := g.run("rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %s; %w", dir, err)
	}

	g.workDir = strings.TrimSpace(root)
	return g, nil
}

func (g *Git) Root() string {
	return g.workDir
}

func (g *Git) GitDir() (string, error) {
	out, err := g.run("rev-parse", "--git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to locate git dir; %w", err)
	}

	dir := strings.TrimSpace(out)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(g.workDir, dir)
	}
	return dir, nil
}

func (g *Git) Head() (string, error) {
	out, err := g.run("rev-parse", "--verify", "--quiet", "HEAD")
	if err != nil {
		// No commits yet.
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

func (g *Git) StagedFiles() ([]string, error) {
	out, err := g.run("diff", "--cached", "--name-only", "--diff-filter=ACM")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files; %w", err)
	}
	return splitLines(out), nil
}

func (g *Git) ChangedSince(rev string) ([]string, error) {
	out, err := g.run("diff", "--name-only", "--diff-filter=ACM", rev)
	if err != nil {
		return nil, fmt.Errorf("failed to diff against %s; %w", rev, err)
	}
	return splitLines(out), nil
}

func (g *Git) TrackedFiles() ([]string, error) {
	out, err := g.run("ls-files")
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked files; %w", err)
	}
	return splitLines(out), nil
}

// run executes a git subcommand in the repository working directory.
func (g *Git) run(args ...string) (string, error) {
	cmd := exec.Command(g.binary, args...)
	cmd.Dir = g.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("git %s: %s; %w", args[0], msg, err)
		}
		return "", fmt.Errorf("git %s; %w", args[0], err)
	}

	return stdout.String(), nil
}

func splitLines(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
