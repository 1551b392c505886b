// Package hook models a single configured check and executes it as an
// external black-box process against its slice of the resolved file set.
package hook

import (
	"strings"
	"time"

	"github.com/vyshnavm345/commitgate/internal/manifest"
)

// Spec is the runtime view of one configured hook, flattened from its
// manifest group with global defaults applied. Immutable once built.
type Spec struct {
	ID              string
	Name            string
	Repo            string
	Rev             string
	Entry           string
	Args            []string
	Language        string
	LanguageVersion string
	Files           []string
	Types           []string
	Exclude         []string
	GlobalExclude   []string
	Timeout         time.Duration
}

// DisplayName returns the alias if set, otherwise the hook id.
func (s Spec) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Command returns the argv prefix for the hook invocation: the entry
// split on whitespace followed by the configured arguments.
func (s Spec) Command() []string {
	entry := s.Entry
	if entry == "" {
		entry = s.ID
	}
	argv := strings.Fields(entry)
	return append(argv, s.Args...)
}

// SpecsFromManifest flattens the manifest into an ordered spec list.
// Order matches the document and defines reporting order for the run.
func SpecsFromManifest(m *manifest.Manifest, defaultTimeout time.Duration) []Spec {
	specs := make([]Spec, 0, m.HookCount())

	for _, repo := range m.Repos {
		for _, h := range repo.Hooks {
			timeout := defaultTimeout
			if h.TimeoutSeconds > 0 {
				timeout = time.Duration(h.TimeoutSeconds) * time.Second
			}

			specs = append(specs, Spec{
				ID:              h.ID,
				Name:            h.Name,
				Repo:            repo.Repo,
				Rev:             repo.Rev,
				Entry:           h.Entry,
				Args:            h.Args,
				Language:        h.Language,
				LanguageVersion: m.DefaultLanguageVersion[h.Language],
				Files:           h.Files,
				Types:           h.Types,
				Exclude:         h.Exclude,
				GlobalExclude:   m.Exclude,
				Timeout:         timeout,
			})
		}
	}

	return specs
}
