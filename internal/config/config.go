// Package config loads CLI configuration from an optional applyform.yaml,
// a .env file and APPLYFORM_* environment variables, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. APPLYFORM_LOG_LEVEL.
const EnvPrefix = "APPLYFORM"

// Config is the resolved CLI configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Form    FormConfig    `mapstructure:"form"`
	Output  OutputConfig  `mapstructure:"output"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FormConfig points at presentation overrides. An empty UISchema uses the
// bundled document.
type FormConfig struct {
	UISchema    string   `mapstructure:"ui_schema"`
	Locations   []string `mapstructure:"locations"`
	MaxAttempts int      `mapstructure:"max_attempts"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	// Path is "-" or empty for stdout.
	Path string `mapstructure:"path"`
}

// MetricsConfig enables the Prometheus textfile. Empty File disables it.
type MetricsConfig struct {
	File string `mapstructure:"file"`
}

// Options control where Load looks.
type Options struct {
	// ConfigFile, when set, must exist.
	ConfigFile string
	// EnvFile defaults to ".env"; a missing default file is ignored.
	EnvFile string
	// SearchPaths default to "." and "./configs".
	SearchPaths []string
}

// Load resolves configuration into a fresh viper instance.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("applyform")
		v.SetConfigType("yaml")
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = []string{".", "./configs"}
		}
		for _, path := range paths {
			v.AddConfigPath(path)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	// Comma separated lists from the environment arrive as one element.
	if raw := os.Getenv(EnvPrefix + "_FORM_LOCATIONS"); raw != "" {
		cfg.Form.Locations = splitList(raw)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("form.ui_schema", "")
	v.SetDefault("form.locations", []string{})
	v.SetDefault("form.max_attempts", 5)
	v.SetDefault("output.format", "json")
	v.SetDefault("output.path", "-")
	v.SetDefault("metrics.file", "")
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return nil
}

// Validate rejects values the CLI cannot act on.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("config: unknown log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("config: unknown log format %q", c.Log.Format))
	}
	switch c.Output.Format {
	case "json", "form", "pretty":
	default:
		errs = append(errs, fmt.Errorf("config: unknown output format %q", c.Output.Format))
	}
	if c.Form.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("config: max_attempts must be 0 or more"))
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
