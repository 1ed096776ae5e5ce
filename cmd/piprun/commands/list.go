package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/piprun/internal/app"
	"go.trai.ch/piprun/internal/core/domain"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached environments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			records, err := c.app.List(cmd.Context(), app.ListOptions{CacheDir: cacheDir})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "KEY\tSTATUS\tCREATED\tSPEC")
			for _, r := range records {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Key, recordStatus(r), recordCreated(r), recordSpec(r))
			}
			return w.Flush()
		},
	}
}

func recordStatus(r domain.Record) string {
	if r.Complete() {
		return "complete"
	}
	return "incomplete"
}

func recordCreated(r domain.Record) string {
	if r.Manifest == nil || r.Manifest.CreatedAt.IsZero() {
		return "-"
	}
	return r.Manifest.CreatedAt.Local().Format(time.DateTime)
}

func recordSpec(r domain.Record) string {
	if r.Manifest == nil {
		return "-"
	}
	parts := make([]string, 0, len(r.Manifest.Requirements)+1)
	if r.Manifest.Interpreter != "" {
		parts = append(parts, r.Manifest.Interpreter)
	}
	parts = append(parts, r.Manifest.Requirements...)
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
