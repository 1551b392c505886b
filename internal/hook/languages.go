package hook

import "sync"

var (
	mu sync.RWMutex

	// languages maps a language name to the file extensions a hook of
	// that language applies to when it declares no files/types filter.
	languages = map[string][]string{
		"python":     {".py", ".pyi"},
		"go":         {".go"},
		"node":       {".js", ".jsx", ".ts", ".tsx"},
		"shell":      {".sh", ".bash"},
		"yaml":       {".yaml", ".yml"},
		"json":       {".json"},
		"markdown":   {".md", ".markdown"},
		"dockerfile": {},
		"system":     {},
	}
)

// RegisterLanguage registers or overrides the default extensions for a
// language name.
func RegisterLanguage(name string, extensions []string) {
	mu.Lock()
	defer mu.Unlock()
	languages[name] = extensions
}

// LanguageTypes returns the default extensions for a language. The second
// return value is false when the language is unknown.
func LanguageTypes(name string) ([]string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	exts, ok := languages[name]
	return exts, ok
}

// ListLanguages returns all registered language names.
func ListLanguages() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	return names
}
