// Package installer registers commitgate as the repository's pre-commit
// hook and can restore whatever hook was there before.
package installer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/vyshnavm345/commitgate/internal/gitrepo"
)

const (
	hookName       = "pre-commit"
	backupSuffix   = ".backup"
	hookScriptTmpl = `#!/bin/sh
# Installed by commitgate. Runs the configured hooks against changed files
# and rejects the commit when any hook fails or rewrites files.
exec {{.Executable}} run
`
)

// Install writes the pre-commit hook script into the repository's hooks
// directory. An existing hook is backed up first so Uninstall can restore
// it. Installing over an existing commitgate hook is a no-op rewrite.
func Install(repo gitrepo.Repository, executable string) (string, error) {
	hooksDir, err := resolveHooksDir(repo)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create hooks directory; %w", err)
	}

	hookPath := filepath.Join(hooksDir, hookName)
	script, err := renderScript(executable)
	if err != nil {
		return "", err
	}

	if existing, err := os.ReadFile(hookPath); err == nil {
		if !bytes.Equal(existing, script) {
			backupPath := hookPath + backupSuffix
			if err := os.Rename(hookPath, backupPath); err != nil {
				return "", fmt.Errorf("failed to back up existing hook; %w", err)
			}
		}
	}

	if err := os.WriteFile(hookPath, script, 0755); err != nil {
		return "", fmt.Errorf("failed to write hook script; %w", err)
	}

	return hookPath, nil
}

// Uninstall removes the installed hook and restores the backup if present.
func Uninstall(repo gitrepo.Repository) error {
	hooksDir, err := resolveHooksDir(repo)
	if err != nil {
		return err
	}

	hookPath := filepath.Join(hooksDir, hookName)
	if err := os.Remove(hookPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no %s hook is installed", hookName)
		}
		return fmt.Errorf("failed to remove hook; %w", err)
	}

	backupPath := hookPath + backupSuffix
	if _, err := os.Stat(backupPath); err == nil {
		if err := os.Rename(backupPath, hookPath); err != nil {
			return fmt.Errorf("failed to restore backed up hook; %w", err)
		}
	}

	return nil
}

// IsInstalled reports whether the current pre-commit hook is ours.
func IsInstalled(repo gitrepo.Repository, executable string) bool {
	hooksDir, err := resolveHooksDir(repo)
	if err != nil {
		return false
	}

	existing, err := os.ReadFile(filepath.Join(hooksDir, hookName))
	if err != nil {
		return false
	}

	script, err := renderScript(executable)
	if err != nil {
		return false
	}

	return bytes.Equal(existing, script)
}

func resolveHooksDir(repo gitrepo.Repository) (string, error) {
	gitDir, err := repo.GitDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "hooks"), nil
}

func renderScript(executable string) ([]byte, error) {
	tmpl, err := template.New(hookName).Parse(hookScriptTmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hook template; %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Executable string }{Executable: executable}); err != nil {
		return nil, fmt.Errorf("failed to render hook script; %w", err)
	}

	return buf.Bytes(), nil
}
