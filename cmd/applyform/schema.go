package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-applyform/pkg/openapi"
)

func newSchemaCommand(root *rootFlags) *cobra.Command {
	var (
		format  string
		title   string
		version string
		output  string
	)
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the application record as an OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.resolve(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if format == "jsonschema" {
				out, err := openapi.JSONSchema(a.orch.Schema())
				if err != nil {
					return err
				}
				return writeOutput(output, cmd.OutOrStdout(), out)
			}
			if title == "" {
				title = a.orch.FormModel().Title
			}
			doc, err := openapi.Document(cmd.Context(), a.orch.Schema(), openapi.Info{
				Title:   title,
				Version: version,
			})
			if err != nil {
				return err
			}
			out, err := openapi.Marshal(doc, format)
			if err != nil {
				return err
			}
			return writeOutput(output, cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "document format: json, yaml or jsonschema")
	cmd.Flags().StringVar(&title, "title", "", "document title (default: form title)")
	cmd.Flags().StringVar(&version, "version", "1.0.0", "document version")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
