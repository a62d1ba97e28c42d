package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sekaitools/chartconv/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	StorePath string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List stored conversions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.StorePath, "store", "", "store database path")
	cmd.MarkFlagRequired("store")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	s, err := store.Open(opts.StorePath)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.List(cmd.Context())
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return writeListJSON(cmd, records)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCHART HASH\tENTITIES\tCREATED")
	for _, r := range records {
		created := time.Unix(r.CreatedAt, 0).UTC().Format(time.RFC3339)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.ID, shortHash(r.ChartHash), r.EntityCount, created)
	}
	return w.Flush()
}

func writeListJSON(cmd *cobra.Command, records []store.Record) error {
	type item struct {
		ID          string `json:"id"`
		ChartHash   string `json:"chart_hash"`
		EntityCount int    `json:"entity_count"`
		CreatedAt   int64  `json:"created_at"`
	}
	items := make([]item, 0, len(records))
	for _, r := range records {
		items = append(items, item{
			ID:          r.ID,
			ChartHash:   r.ChartHash,
			EntityCount: r.EntityCount,
			CreatedAt:   r.CreatedAt,
		})
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
