// Package config loads coursextract settings from defaults, an optional YAML
// file, COURSEXTRACT_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mptwarrior/coursextract/internal/outline"
	"github.com/mptwarrior/coursextract/internal/output"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "COURSEXTRACT"

// Config holds coursextract configuration.
type Config struct {
	FullModules  int          `mapstructure:"full_modules" yaml:"full_modules"`   // Leading modules extracted in full
	TotalModules int          `mapstructure:"total_modules" yaml:"total_modules"` // Module records produced
	Workers      int          `mapstructure:"workers" yaml:"workers"`             // Concurrent module extractions
	LogLevel     string       `mapstructure:"log_level" yaml:"log_level"`         // debug, info, warn, error
	Output       OutputConfig `mapstructure:"output" yaml:"output"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	// Path is the result file.
	Path string `mapstructure:"path" yaml:"path"`
	// RawText is the raw text dump; empty disables it.
	RawText string `mapstructure:"raw_text" yaml:"raw_text"`
	// Format is json or yaml.
	Format string `mapstructure:"format" yaml:"format"`
	// Validate checks the encoded result against the result schema.
	Validate bool `mapstructure:"validate" yaml:"validate"`
}

// DefaultConfig returns the six-module academy layout with three written
// modules, writing academy_content.json and pdf_raw_text.txt.
func DefaultConfig() *Config {
	opts := outline.DefaultOptions()
	return &Config{
		FullModules:  opts.FullModules,
		TotalModules: opts.TotalModules,
		Workers:      opts.Workers,
		LogLevel:     "info",
		Output: OutputConfig{
			Path:     "academy_content.json",
			RawText:  "pdf_raw_text.txt",
			Format:   string(output.FormatJSON),
			Validate: true,
		},
	}
}

// SetDefaults registers DefaultConfig values on v, one key per leaf so each
// can be overridden from the environment.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("full_modules", d.FullModules)
	v.SetDefault("total_modules", d.TotalModules)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.raw_text", d.Output.RawText)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.validate", d.Output.Validate)
}

// Load reads configuration into v and returns the merged Config. cfgFile
// names an explicit config file; when empty, coursextract.yaml is looked up
// in the working directory and in $HOME/.coursextract, and a missing file is
// not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("coursextract")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.coursextract")
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.FullModules < 0:
		return fmt.Errorf("full_modules must not be negative, got %d", c.FullModules)
	case c.TotalModules < 0:
		return fmt.Errorf("total_modules must not be negative, got %d", c.TotalModules)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() output.Format {
	f, err := output.ParseFormat(c.Output.Format)
	if err != nil {
		return output.FormatJSON
	}
	return f
}

// ExtractOptions converts the config to extractor options.
func (c *Config) ExtractOptions(logger *slog.Logger) *outline.Options {
	return &outline.Options{
		FullModules:  c.FullModules,
		TotalModules: c.TotalModules,
		Workers:      c.Workers,
		Logger:       logger,
	}
}

// ParseLogLevel converts debug, info, warn or error to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", s)
	}
	return level, nil
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# coursextract configuration
# Every key can be overridden with a COURSEXTRACT_ environment variable,
# e.g. COURSEXTRACT_FULL_MODULES=4 or COURSEXTRACT_OUTPUT_FORMAT=yaml

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
