package config

// Config represents the application configuration
type Config struct {
	Run     RunConfig     `mapstructure:"run" yaml:"run"`
	Hooks   HooksConfig   `mapstructure:"hooks" yaml:"hooks"`
	Git     GitConfig     `mapstructure:"git" yaml:"git"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// RunConfig controls scheduling and report rendering for a run
type RunConfig struct {
	// Jobs bounds the number of hooks executing concurrently. Zero means
	// one worker per CPU.
	Jobs  int  `mapstructure:"jobs" yaml:"jobs"`
	Color bool `mapstructure:"color" yaml:"color"`
}

// HooksConfig carries defaults applied to hooks that do not pin their own
type HooksConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// GitConfig contains configuration for the git binary used by the resolver
type GitConfig struct {
	Binary string `mapstructure:"binary" yaml:"binary"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level" yaml:"level"`
	Format  string `mapstructure:"format" yaml:"format"`
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}
