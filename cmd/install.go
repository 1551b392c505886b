package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vyshnavm345/commitgate/internal/config"
	"github.com/vyshnavm345/commitgate/internal/gitrepo"
	"github.com/vyshnavm345/commitgate/internal/installer"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the commitgate pre-commit hook into .git/hooks",
	Long: "Install registers commitgate to run automatically on every commit. A " +
		"pre-existing pre-commit hook is backed up and restored on uninstall.",
	RunE: runInstall,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the commitgate pre-commit hook",
	Long:  "Uninstall removes the installed hook and restores any backed up hook.",
	RunE:  runUninstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	repo, err := gitrepo.Open(cfg.Git.Binary, ".")
	if err != nil {
		return err
	}

	executable, err := os.Executable()
	if err != nil {
		executable = "commitgate"
	}

	hookPath, err := installer.Install(repo, executable)
	if err != nil {
		return err
	}

	fmt.Printf("Installed pre-commit hook: %s\n", hookPath)
	return nil
}

func runUninstall(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	repo, err := gitrepo.Open(cfg.Git.Binary, ".")
	if err != nil {
		return err
	}

	if err := installer.Uninstall(repo); err != nil {
		return err
	}

	fmt.Println("Removed pre-commit hook")
	return nil
}
