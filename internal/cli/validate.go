package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sekaitools/chartconv/internal/schema"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <chart-file>",
		Short: "Validate a raw chart file against the chart schema",
		Long: `Validate a raw extended-chart JSON file against the chart schema
without converting it. Exits non-zero if the chart is malformed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read chart: %w", err)
	}

	data, err := decodeChart(raw)
	if err != nil {
		return err
	}

	v, err := schema.NewValidator()
	if err != nil {
		return err
	}
	if err := v.Validate(data); err != nil {
		return err
	}

	if opts.Format == "json" {
		fmt.Fprintf(cmd.OutOrStdout(), "{\"valid\":true,\"entities\":%d}\n", len(data.Entities))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "valid: %d entities\n", len(data.Entities))
	}
	return nil
}
