package fileset

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vyshnavm345/commitgate/internal/state"
	"github.com/vyshnavm345/commitgate/pkg/types"
)

// fakeRepo implements gitrepo.Repository against fixed data.
type fakeRepo struct {
	head    string
	staged  []string
	changed map[string][]string
	tracked []string
	err     error
}

func (f *fakeRepo) Root() string            { return "/repo" }
func (f *fakeRepo) GitDir() (string, error) { return "/repo/.git", nil }
func (f *fakeRepo) Head() (string, error)   { return f.head, nil }

func (f *fakeRepo) StagedFiles() ([]string, error) {
	return f.staged, f.err
}

func (f *fakeRepo) ChangedSince(rev string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.changed[rev], nil
}

func (f *fakeRepo) TrackedFiles() ([]string, error) {
	return f.tracked, f.err
}

func TestResolveAllFiles(t *testing.T) {
	repo := &fakeRepo{
		tracked: []string{"manage.py", "app/models.py", "app/views.py"},
	}

	r := NewResolver(repo, nil)
	got, err := r.Resolve(types.ModeAllFiles, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := types.FileSet{"app/models.py", "app/views.py", "manage.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolveChangedWithMarker(t *testing.T) {
	repo := &fakeRepo{
		head:   "bbb",
		staged: []string{"app/views.py", "app/models.py"},
		changed: map[string][]string{
			"aaa": {"app/models.py", "settings.py"},
		},
		tracked: []string{"manage.py", "app/models.py", "app/views.py", "settings.py"},
	}
	marker := &state.Marker{Head: "aaa"}

	r := NewResolver(repo, marker)
	got, err := r.Resolve(types.ModeChangedOnly, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	// Union of staged and changed-since-marker, deduplicated and sorted.
	want := types.FileSet{"app/models.py", "app/views.py", "settings.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolveChangedNoMarker(t *testing.T) {
	repo := &fakeRepo{
		tracked: []string{"b.py", "a.py"},
	}

	r := NewResolver(repo, nil)
	got, err := r.Resolve(types.ModeChangedOnly, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := types.FileSet{"a.py", "b.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() with no marker = %v, want %v", got, want)
	}
}

func TestResolveChangedUnchangedRepo(t *testing.T) {
	// Nothing staged, nothing changed since the marker: empty set.
	repo := &fakeRepo{
		head:    "aaa",
		changed: map[string][]string{"aaa": nil},
	}
	marker := &state.Marker{Head: "aaa"}

	r := NewResolver(repo, marker)
	got, err := r.Resolve(types.ModeChangedOnly, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Resolve() on unchanged repo = %v, want empty", got)
	}
}

func TestResolveExplicitFiles(t *testing.T) {
	repo := &fakeRepo{tracked: []string{"a.py", "b.py"}}

	r := NewResolver(repo, nil)
	got, err := r.Resolve(types.ModeChangedOnly, []string{"c.py", "a.py", "c.py"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := types.FileSet{"a.py", "c.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() with explicit files = %v, want %v", got, want)
	}
}

func TestResolveRepoError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("boom")}

	r := NewResolver(repo, nil)
	if _, err := r.Resolve(types.ModeAllFiles, nil); err == nil {
		t.Error("Resolve() expected error from repository handle")
	}
}
