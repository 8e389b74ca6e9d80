package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-applyform/pkg/renderers/tui"
)

func newRunCommand(root *rootFlags) *cobra.Command {
	var (
		format      string
		output      string
		prefill     string
		maxAttempts int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill in the application interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.resolve(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.flush()
			if format == "" {
				format = a.cfg.Output.Format
			}
			outFormat, ok := tui.ParseOutputFormat(format)
			if !ok {
				return fmt.Errorf("unknown output format %q", format)
			}
			if output == "" {
				output = a.cfg.Output.Path
			}
			if !cmd.Flags().Changed("max-attempts") {
				maxAttempts = a.cfg.Form.MaxAttempts
			}

			ctrl := a.orch.NewController()
			if prefill != "" {
				values, err := readValues(prefill, cmd.InOrStdin())
				if err != nil {
					return err
				}
				if err := ctrl.Prefill(values); err != nil {
					return err
				}
			}

			runner := tui.New(
				tui.WithOutputFormat(outFormat),
				tui.WithLogger(a.logger),
				tui.WithMaxAttempts(maxAttempts),
				tui.WithSubmitHook(a.metrics.Hook("run")),
			)
			out, err := runner.Run(cmd.Context(), ctrl, a.orch.FormModel())
			if err != nil {
				return err
			}
			return writeOutput(output, cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: json, form or pretty")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the submitted record to a file instead of stdout")
	cmd.Flags().StringVar(&prefill, "prefill", "", "JSON or YAML file with initial values (- for stdin)")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "submit attempts before giving up (0 = unlimited)")
	return cmd
}
