package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-applyform/pkg/orchestrator"
	"github.com/goliatone/go-applyform/pkg/schema"
)

func newRenderCommand(root *rootFlags) *cobra.Command {
	var (
		renderer string
		prefill  string
		submit   bool
		focus    string
		output   string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the form state with a registered renderer",
		Long: "Render applies the prefill values to a fresh form session, optionally " +
			"submits it, and renders the resulting state. A failed submit renders the " +
			"form with its inline errors; a successful one renders the success view.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.resolve(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.flush()

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
			if submit {
				// Rejections are rendered, not returned.
				_ = ctrl.Submit()
				a.metrics.Observe("render", ctrl.Errors())
			}
			if focus != "" {
				if err := ctrl.FocusField(schema.FieldName(focus)); err != nil {
					return err
				}
			}

			out, err := a.orch.Render(cmd.Context(), orchestrator.Request{
				Renderer: renderer,
				Snapshot: ctrl.Snapshot(),
			})
			if err != nil {
				return err
			}
			return writeOutput(output, cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&renderer, "renderer", "r", "", "renderer name: html or text (default html)")
	cmd.Flags().StringVar(&prefill, "prefill", "", "JSON or YAML file with field values (- for stdin)")
	cmd.Flags().BoolVar(&submit, "submit", false, "submit after applying the values")
	cmd.Flags().StringVar(&focus, "focus", "", "field to mark as focused")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
