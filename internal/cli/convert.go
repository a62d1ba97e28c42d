package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sekaitools/chartconv/internal/chart"
	"github.com/sekaitools/chartconv/internal/convert"
	"github.com/sekaitools/chartconv/internal/level"
	"github.com/sekaitools/chartconv/internal/schema"
	"github.com/sekaitools/chartconv/internal/store"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Output    string // output file path, "-" or empty for stdout
	StorePath string // optional store database path
	NoCheck   bool   // skip schema validation
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <chart-file>",
		Short: "Convert a raw chart file to level data",
		Long: `Convert a raw extended-chart JSON file into engine level data.

The chart is schema-validated, converted, and written as canonical JSON.
With --store, the result is also recorded keyed by the chart's content
hash; converting an identical chart again reuses the stored record.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&opts.StorePath, "store", "", "record the conversion in this store database")
	cmd.Flags().BoolVar(&opts.NoCheck, "no-check", false, "skip schema validation")

	return cmd
}

func runConvert(ctx context.Context, opts *ConvertOptions, path string, cmd *cobra.Command) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read chart: %w", err)
	}

	data, err := decodeChart(raw)
	if err != nil {
		return err
	}

	if !opts.NoCheck {
		v, err := schema.NewValidator()
		if err != nil {
			return err
		}
		if err := v.Validate(data); err != nil {
			return err
		}
	}

	out, err := convert.Convert(data, convert.WithLogger(newLogger(opts.RootOptions)))
	if err != nil {
		return fmt.Errorf("convert chart: %w", err)
	}

	exported := level.Export(out)
	payload, err := level.MarshalCanonical(exported)
	if err != nil {
		return fmt.Errorf("encode level: %w", err)
	}

	if opts.StorePath != "" {
		s, err := store.Open(opts.StorePath)
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.SaveLevel(ctx, store.HashChart(raw), exported)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "stored as %s\n", id)
	}

	if opts.Output == "" || opts.Output == "-" {
		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return nil
	}
	if err := os.WriteFile(opts.Output, payload, 0o644); err != nil {
		return fmt.Errorf("write level: %w", err)
	}
	if opts.Format == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "converted %d entities -> %s\n", len(exported.Entities), opts.Output)
	}
	return nil
}

// decodeChart decodes a raw chart file. Numbers decode as float64, which
// is the interchange format's only numeric type.
func decodeChart(raw []byte) (chart.LevelData, error) {
	var data chart.LevelData
	if err := json.Unmarshal(raw, &data); err != nil {
		return chart.LevelData{}, fmt.Errorf("decode chart: %w", err)
	}
	return data, nil
}
