package hook

import (
	"path/filepath"
	"strings"

	"github.com/vyshnavm345/commitgate/internal/glob"
	"github.com/vyshnavm345/commitgate/pkg/types"
)

// Scope filters the resolved file set down to the paths this hook accepts.
// The resolver hands every hook the full set; declared patterns, extension
// filters, and the language's default extensions are applied here.
func (s Spec) Scope(files types.FileSet) []string {
	var scoped []string
	for _, path := range files {
		if s.accepts(path) {
			scoped = append(scoped, path)
		}
	}
	return scoped
}

func (s Spec) accepts(path string) bool {
	if glob.MatchAny(path, s.GlobalExclude) || glob.MatchAny(path, s.Exclude) {
		return false
	}

	if len(s.Files) > 0 && !glob.MatchAny(path, s.Files) {
		return false
	}

	if len(s.Types) > 0 {
		return hasAnyExtension(path, s.Types)
	}

	// No explicit filter: fall back to the language's default extensions.
	// A language with no registered extensions accepts every path.
	if len(s.Files) == 0 && s.Language != "" {
		if exts, ok := LanguageTypes(s.Language); ok && len(exts) > 0 {
			return hasAnyExtension(path, exts)
		}
	}

	return true
}

func hasAnyExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, want := range extensions {
		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
