package hook

import (
	"reflect"
	"testing"

	"github.com/vyshnavm345/commitgate/pkg/types"
)

var scopeFileSet = types.FileSet{
	"app/models.py",
	"app/static/site.js",
	"manage.py",
	"migrations/0001_initial.py",
	"readme.md",
	"setup.cfg",
}

func TestScopeByFilesPatterns(t *testing.T) {
	spec := Spec{ID: "black", Files: []string{"app/**/*.py"}}

	got := spec.Scope(scopeFileSet)
	want := []string{"app/models.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scope() = %v, want %v", got, want)
	}
}

func TestScopeByTypes(t *testing.T) {
	spec := Spec{ID: "flake8", Types: []string{".py"}}

	got := spec.Scope(scopeFileSet)
	want := []string{"app/models.py", "manage.py", "migrations/0001_initial.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scope() = %v, want %v", got, want)
	}
}

func TestScopeByLanguageDefaults(t *testing.T) {
	spec := Spec{ID: "isort", Language: "python"}

	got := spec.Scope(scopeFileSet)
	want := []string{"app/models.py", "manage.py", "migrations/0001_initial.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scope() = %v, want %v", got, want)
	}
}

func TestScopeExclude(t *testing.T) {
	spec := Spec{
		ID:      "flake8",
		Types:   []string{".py"},
		Exclude: []string{"migrations/**"},
	}

	got := spec.Scope(scopeFileSet)
	want := []string{"app/models.py", "manage.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scope() = %v, want %v", got, want)
	}
}

func TestScopeGlobalExclude(t *testing.T) {
	spec := Spec{
		ID:            "black",
		Language:      "python",
		GlobalExclude: []string{"migrations/**", "manage.py"},
	}

	got := spec.Scope(scopeFileSet)
	want := []string{"app/models.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scope() = %v, want %v", got, want)
	}
}

func TestScopeNoFilterAcceptsEverything(t *testing.T) {
	spec := Spec{ID: "trailing-whitespace"}

	got := spec.Scope(scopeFileSet)
	if len(got) != len(scopeFileSet) {
		t.Errorf("Scope() matched %d files, want %d", len(got), len(scopeFileSet))
	}
}

func TestScopeSystemLanguageAcceptsEverything(t *testing.T) {
	spec := Spec{ID: "custom-check", Language: "system"}

	got := spec.Scope(scopeFileSet)
	if len(got) != len(scopeFileSet) {
		t.Errorf("Scope() matched %d files, want %d", len(got), len(scopeFileSet))
	}
}

func TestScopeNoMatches(t *testing.T) {
	spec := Spec{ID: "gofmt", Language: "go"}

	got := spec.Scope(scopeFileSet)
	if len(got) != 0 {
		t.Errorf("Scope() = %v, want empty", got)
	}
}

func TestHasAnyExtensionNormalizesDot(t *testing.T) {
	if !hasAnyExtension("a.py", []string{"py"}) {
		t.Error("extension without leading dot should still match")
	}
}
