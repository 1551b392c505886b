package config

import (
	"os"
	"path/filepath"
)

// ManifestFileName is the repository-local hook manifest consumed by the
// loader in internal/manifest.
const ManifestFileName = ".commitgate.yaml"

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	Run: RunConfig{
		Jobs:  0, // one worker per CPU
		Color: true,
	},
	Hooks: HooksConfig{
		TimeoutSeconds: 60,
	},
	Git: GitConfig{
		Binary: "git",
	},
	Logging: LoggingConfig{
		Level:   "info",
		Format:  "json",
		LogFile: "", // Empty = logging disabled, set path to enable file logging
	},
}

// GetDefaultConfigDir returns the default configuration directory
func GetDefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".commitgate"
	}
	return filepath.Join(home, ".commitgate")
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	return filepath.Join(GetDefaultConfigDir(), "config.yaml")
}
