// Package fileset resolves the set of files a run applies to.
package fileset

import (
	"fmt"
	"sort"

	"github.com/vyshnavm345/commitgate/internal/gitrepo"
	"github.com/vyshnavm345/commitgate/internal/state"
	"github.com/vyshnavm345/commitgate/pkg/types"
)

// Resolver computes the FileSet for a run. It never applies hook scope
// patterns; scope filtering is each hook's own responsibility.
type Resolver struct {
	repo   gitrepo.Repository
	marker *state.Marker
}

// NewResolver creates a resolver over the given repository handle. marker
// may be nil when no successful run has been recorded.
func NewResolver(repo gitrepo.Repository, marker *state.Marker) *Resolver {
	return &Resolver{
		repo:   repo,
		marker: marker,
	}
}

// Resolve computes the file set once per invocation. An explicit file list
// overrides mode-based resolution.
func (r *Resolver) Resolve(mode types.Mode, explicit []string) (types.FileSet, error) {
	if len(explicit) > 0 {
		return normalize(explicit), nil
	}

	switch mode {
	case types.ModeAllFiles:
		files, err := r.repo.TrackedFiles()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve all-files set; %w", err)
		}
		return normalize(files), nil

	case types.ModeChangedOnly:
		return r.resolveChanged()

	default:
		return nil, fmt.Errorf("unknown file-set mode %q", mode)
	}
}

// resolveChanged unions staged files with files changed since the last
// successful run marker. With no marker, every tracked file is a candidate.
func (r *Resolver) resolveChanged() (types.FileSet, error) {
	if r.marker == nil || r.marker.Head == "" {
		files, err := r.repo.TrackedFiles()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve initial changed set; %w", err)
		}
		return normalize(files), nil
	}

	changed, err := r.repo.ChangedSince(r.marker.Head)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve changed files; %w", err)
	}

	staged, err := r.repo.StagedFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve staged files; %w", err)
	}

	return normalize(append(changed, staged...)), nil
}

// normalize deduplicates and sorts so resolution is deterministic.
func normalize(files []string) types.FileSet {
	seen := make(map[string]struct{}, len(files))
	out := make(types.FileSet, 0, len(files))
	for _, f := range files {
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
