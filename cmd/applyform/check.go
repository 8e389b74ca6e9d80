package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-applyform/pkg/openapi"
	"github.com/goliatone/go-applyform/pkg/validation"
)

// errCheckFailed makes the process exit non-zero after the messages have
// been printed.
var errCheckFailed = errors.New("application is invalid")

func newCheckCommand(root *rootFlags) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a JSON or YAML application record",
		Long: "Check validates a record file (- for stdin) and prints one line per failing field in form order.\n" +
			"By default values are coerced the way typed input is. With --strict the file must match the\n" +
			"exported JSON Schema exactly (numbers as numbers, no extra properties).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.resolve(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.flush()
			data, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			var errs validation.ErrorMap
			if strict {
				doc, err := toJSON(data)
				if err != nil {
					return err
				}
				if errs, err = openapi.ValidateJSON(a.orch.Schema(), doc); err != nil {
					return err
				}
			} else {
				values, err := parseValues(data)
				if err != nil {
					return err
				}
				ctrl := a.orch.NewController()
				if err := ctrl.Prefill(values); err != nil {
					return err
				}
				if err := ctrl.Submit(); err != nil {
					var ok bool
					if errs, ok = validation.AsErrorMap(err); !ok {
						return err
					}
				}
			}
			a.metrics.ObserveCheck(errs)
			return report(cmd.OutOrStdout(), errs, append(a.orch.Schema().Names(), openapi.FormErrorKey))
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "validate against the JSON Schema without coercion")
	return cmd
}

func report(w io.Writer, errs validation.ErrorMap, order []string) error {
	if len(errs) == 0 {
		fmt.Fprintln(w, "ok")
		return nil
	}
	for _, fe := range errs.Ordered(order) {
		fmt.Fprintf(w, "%s: %s\n", fe.Field, fe.Message)
	}
	return fmt.Errorf("%w: %d field(s) failed", errCheckFailed, len(errs))
}
