package runner

import (
	"fmt"
	"os"
	"path/filepath"
)

const lockFileName = "run.lock"

// runLock is a repository-level lock. Two concurrent runs racing to rewrite
// the same files would corrupt results, so at most one run may proceed.
type runLock struct {
	path string
}

// acquireRunLock takes the lock, failing when another run holds it.
func acquireRunLock(gitDir string) (*runLock, error) {
	dir := filepath.Join(gitDir, "commitgate")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory; %w", err)
	}

	path := filepath.Join(dir, lockFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("another commitgate run is in progress (lock: %s)", path)
		}
		return nil, fmt.Errorf("failed to acquire run lock; %w", err)
	}

	fmt.Fprintf(f, "%d\n", os.Getpid())
	f.Close()

	return &runLock{path: path}, nil
}

func (l *runLock) release() {
	_ = os.Remove(l.path)
}
