package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/piprun/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [key...]",
		Short: "Remove cached environments",
		Long:  "Remove the environments with the given keys, or every cached environment when no key is given.",
		RunE: func(cmd *cobra.Command, keys []string) error {
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			removed, err := c.app.Clean(cmd.Context(), keys, app.CleanOptions{CacheDir: cacheDir})
			for _, key := range removed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", key)
			}
			return err
		},
	}
}
