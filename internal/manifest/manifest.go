// Package manifest loads and validates the ordered hook configuration
// from the repository-local .commitgate.yaml document.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{
			Kind:   MalformedDocument,
			Detail: fmt.Sprintf("cannot read %s", path),
			Err:    err,
		}
	}

	return Parse(data)
}

// Parse decodes and validates a manifest document. The yaml decoder
// preserves document order, which defines hook execution order.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ConfigError{
			Kind:   MalformedDocument,
			Detail: "cannot parse yaml",
			Err:    err,
		}
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// validate enforces the structural invariants: every group carries a source
// identity and version pin, and hook ids are unique within their group.
func (m *Manifest) validate() error {
	if len(m.Repos) == 0 {
		return &ConfigError{
			Kind:   MissingField,
			Detail: "manifest declares no repos",
		}
	}

	for i, repo := range m.Repos {
		if repo.Repo == "" {
			return &ConfigError{
				Kind:   MissingField,
				Detail: fmt.Sprintf("repos[%d] is missing the repo field", i),
			}
		}
		if repo.Rev == "" {
			return &ConfigError{
				Kind:   MissingField,
				Detail: fmt.Sprintf("repo %q is missing the rev pin", repo.Repo),
			}
		}
		if len(repo.Hooks) == 0 {
			return &ConfigError{
				Kind:   MissingField,
				Detail: fmt.Sprintf("repo %q declares no hooks", repo.Repo),
			}
		}

		seen := make(map[string]struct{}, len(repo.Hooks))
		for j, hook := range repo.Hooks {
			if hook.ID == "" {
				return &ConfigError{
					Kind:   MissingField,
					Detail: fmt.Sprintf("repo %q hooks[%d] is missing the id field", repo.Repo, j),
				}
			}
			if _, dup := seen[hook.ID]; dup {
				return &ConfigError{
					Kind:   DuplicateIdentifier,
					Detail: fmt.Sprintf("hook %q appears more than once in repo %q", hook.ID, repo.Repo),
				}
			}
			seen[hook.ID] = struct{}{}
		}
	}

	return nil
}
