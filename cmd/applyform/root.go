package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-applyform/internal/config"
	"github.com/goliatone/go-applyform/internal/logger"
	"github.com/goliatone/go-applyform/internal/metrics"
	"github.com/goliatone/go-applyform/pkg/orchestrator"
)

type rootFlags struct {
	configFile string
	envFile    string
	logLevel   string
	logFormat  string
	uiSchema   string
	locations  []string
	metrics    string
}

// app is resolved once per command from config and flags.
type app struct {
	cfg     *config.Config
	logger  logger.Logger
	orch    *orchestrator.Orchestrator
	metrics *metrics.Recorder
}

// flush writes the counters when a metrics file is configured. It runs after
// the command so rejected checks are still recorded.
func (a *app) flush() {
	if a.cfg.Metrics.File == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.cfg.Metrics.File); err != nil {
		a.logger.Warn("failed to write metrics", map[string]interface{}{
			"path":  a.cfg.Metrics.File,
			"error": err.Error(),
		})
	}
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "applyform",
		Short:         "Fill in, render and validate job applications",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default: ./applyform.yaml if present)")
	pf.StringVar(&flags.envFile, "env-file", "", "dotenv file loaded before reading the environment (default: .env if present)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: console or json")
	pf.StringVar(&flags.uiSchema, "ui-schema", "", "UI schema file overriding labels and copy")
	pf.StringSliceVar(&flags.locations, "locations", nil, "preferred location options")
	pf.StringVar(&flags.metrics, "metrics-file", "", "write Prometheus textfile counters to this path on exit")

	root.AddCommand(
		newRunCommand(flags),
		newRenderCommand(flags),
		newSchemaCommand(flags),
		newCheckCommand(flags),
	)
	return root
}

func (f *rootFlags) resolve(stderr io.Writer) (*app, error) {
	cfg, err := config.Load(config.Options{ConfigFile: f.configFile, EnvFile: f.envFile})
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	if f.uiSchema != "" {
		cfg.Form.UISchema = f.uiSchema
	}
	if len(f.locations) > 0 {
		cfg.Form.Locations = f.locations
	}
	if f.metrics != "" {
		cfg.Metrics.File = f.metrics
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.NewStructured(cfg.Log.Level, cfg.Log.Format, stderr)
	orch, err := orchestrator.New(
		orchestrator.WithUISchemaFile(cfg.Form.UISchema),
		orchestrator.WithLocations(cfg.Form.Locations...),
		orchestrator.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	log.Debug("configuration resolved", map[string]interface{}{
		"uiSchema":  cfg.Form.UISchema,
		"locations": len(orch.Schema().Locations()),
	})
	return &app{cfg: cfg, logger: log, orch: orch, metrics: metrics.New()}, nil
}
