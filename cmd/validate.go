package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vyshnavm345/commitgate/internal/config"
	"github.com/vyshnavm345/commitgate/internal/gitrepo"
	"github.com/vyshnavm345/commitgate/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the hook manifest without running anything",
	Long: "Validate loads .commitgate.yaml, checks the structural invariants, and " +
		"prints the resolved hook list in execution order.",
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	repo, err := gitrepo.Open(cfg.Git.Binary, ".")
	if err != nil {
		return err
	}

	path := filepath.Join(repo.Root(), config.ManifestFileName)
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d hooks in %d groups\n", path, m.HookCount(), len(m.Repos))
	for _, group := range m.Repos {
		fmt.Printf("  %s @ %s\n", group.Repo, group.Rev)
		for _, h := range group.Hooks {
			fmt.Printf("    - %s\n", h.DisplayName())
		}
	}

	return nil
}
