package main

import (
	"errors"
	"os"

	"github.com/vyshnavm345/commitgate/cmd"
	"github.com/vyshnavm345/commitgate/internal/manifest"
	"github.com/vyshnavm345/commitgate/internal/runner"
)

// Version information set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

// Exit codes: 1 means the run blocked the triggering operation, 2 means the
// manifest was invalid and no hooks ran.
const (
	exitBlocked     = 1
	exitConfigError = 2
)

func main() {
	// Pass version info to cmd package
	cmd.SetVersionInfo(Version, BuildTime, Commit)

	if err := cmd.Execute(); err != nil {
		var cfgErr *manifest.ConfigError
		switch {
		case errors.As(err, &cfgErr):
			os.Exit(exitConfigError)
		case errors.Is(err, runner.ErrBlocked):
			os.Exit(exitBlocked)
		default:
			os.Exit(1)
		}
	}
}
