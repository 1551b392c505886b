package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vyshnavm345/commitgate/internal/config"
	"github.com/vyshnavm345/commitgate/internal/runner"
)

var rootCmd = &cobra.Command{
	Use:   "commitgate",
	Short: "Gate git commits behind configured code-quality hooks",
	Long: "\ncommitgate runs the ordered hooks declared in .commitgate.yaml against the " +
		"files a commit touches and blocks the commit when any hook fails or rewrites files.\n\n" +
		"Install it once with 'commitgate install'; after that every 'git commit' is gated. " +
		"Run hooks by hand with 'commitgate run' or 'commitgate run --all-files'.",
	PersistentPreRunE: runInit,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to configuration file (default: ~/.commitgate/config.yaml)")
	rootCmd.PersistentFlags().Int("jobs", config.DefaultConfig.Run.Jobs, "Concurrent hook executions (0 = one per CPU)")
	rootCmd.PersistentFlags().Bool("color", config.DefaultConfig.Run.Color, "Colorize the run report")
	rootCmd.PersistentFlags().String("log-level", config.DefaultConfig.Logging.Level, "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultConfig.Logging.Format, "Logging format (json, text)")

	// Bind flags to viper
	viper.BindPFlag("run.jobs", rootCmd.PersistentFlags().Lookup("jobs"))
	viper.BindPFlag("run.color", rootCmd.PersistentFlags().Lookup("color"))
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)

	// Enable --version flag on root command
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("commitgate version {{.Version}}\n")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	if err := config.InitConfig(configPath); err != nil {
		return fmt.Errorf("failed to initialize configuration; %w", err)
	}

	return nil
}

func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()

	if err != nil {
		// The run report already explains a Block verdict; only the exit
		// code needs to carry it.
		if errors.Is(err, runner.ErrBlocked) {
			return err
		}

		cmd, _, _ := rootCmd.Find(os.Args[1:])
		if cmd == nil {
			cmd = rootCmd
		}

		fmt.Printf("Error: %v\n", err)
		if !cmd.SilenceUsage {
			fmt.Printf("\n")
			cmd.SetOut(os.Stdout)
			cmd.Usage()
		}

		return err
	}

	return nil
}
