package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vyshnavm345/commitgate/internal/config"
	"github.com/vyshnavm345/commitgate/internal/gitrepo"
	"github.com/vyshnavm345/commitgate/internal/hook"
	"github.com/vyshnavm345/commitgate/internal/manifest"
	"github.com/vyshnavm345/commitgate/internal/runner"
	"github.com/vyshnavm345/commitgate/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run [hook-ids...]",
	Short: "Run the configured hooks and report Allow or Block",
	Long: "Run executes the hooks declared in .commitgate.yaml. By default only files " +
		"changed since the last successful run are considered; --all-files covers every " +
		"tracked file. Exit status is 0 when the run allows the operation and non-zero " +
		"when it blocks.",
	RunE: runRun,
}

func init() {
	runCmd.Flags().Bool("all-files", false, "Run against every tracked file instead of changed files")
	runCmd.Flags().StringSlice("files", nil, "Run against exactly these files")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	logger := config.SetupLogger(cfg)

	// A user interrupt aborts in-flight hooks and the run reports Block.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := gitrepo.Open(cfg.Git.Binary, ".")
	if err != nil {
		return err
	}

	m, err := manifest.Load(filepath.Join(repo.Root(), config.ManifestFileName))
	if err != nil {
		return err
	}

	mode := types.ModeChangedOnly
	if allFiles, _ := cmd.Flags().GetBool("all-files"); allFiles {
		mode = types.ModeAllFiles
	}
	files, _ := cmd.Flags().GetStringSlice("files")

	exec := hook.NewExecutor(logger, repo.Root())
	r := runner.New(cfg, logger, exec)

	report, err := r.Run(ctx, m, repo, runner.Options{
		Mode:  mode,
		Files: files,
		Hooks: args,
	})
	if err != nil {
		return err
	}

	runner.Render(os.Stdout, report, cfg.Run.Color)

	if report.Verdict == types.VerdictBlock {
		return runner.ErrBlocked
	}

	return nil
}
