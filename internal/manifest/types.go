package manifest

// Hook identifies one check within a repo group. Immutable once loaded.
type Hook struct {
	// ID is the unique identifier for the hook within its group.
	ID string `yaml:"id"`

	// Name is an optional display alias shown in the run report.
	Name string `yaml:"name,omitempty"`

	// Entry is the command invoked for this hook. Defaults to ID when empty.
	// It may contain arguments, e.g. "ruff check".
	Entry string `yaml:"entry,omitempty"`

	// Args are extra arguments appended after Entry and before the file list.
	Args []string `yaml:"args,omitempty"`

	// Language pins the runtime the hook targets. When Files and Types are
	// both empty, the language's default extensions define the hook's scope.
	Language string `yaml:"language,omitempty"`

	// Files restricts the hook to paths matching these glob patterns.
	Files []string `yaml:"files,omitempty"`

	// Types restricts the hook to paths with these extensions, e.g. ".py".
	Types []string `yaml:"types,omitempty"`

	// Exclude removes matching paths from the hook's scope.
	Exclude []string `yaml:"exclude,omitempty"`

	// TimeoutSeconds overrides the configured default hook timeout.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// DisplayName returns the alias if set, otherwise the hook id.
func (h Hook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// Repo is an ordered group of hooks sharing a source identity and version
// pin. Insertion order defines execution and reporting order.
type Repo struct {
	Repo  string `yaml:"repo"`
	Rev   string `yaml:"rev"`
	Hooks []Hook `yaml:"hooks"`
}

// Manifest models the .commitgate.yaml document. Loaded once per invocation
// and never mutated during a run.
type Manifest struct {
	// DefaultLanguageVersion maps a language name to the runtime version
	// hooks of that language should target.
	DefaultLanguageVersion map[string]string `yaml:"default_language_version,omitempty"`

	// Exclude removes matching paths from every hook's scope.
	Exclude []string `yaml:"exclude,omitempty"`

	Repos []Repo `yaml:"repos"`
}

// HookCount returns the total number of hooks across all groups.
func (m *Manifest) HookCount() int {
	n := 0
	for _, repo := range m.Repos {
		n += len(repo.Hooks)
	}
	return n
}
