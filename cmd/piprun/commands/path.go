package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/piprun/internal/app"
)

func (c *CLI) newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path [interpreter] requirement...",
		Short: "Print the environment directory for a set of requirements",
		Long:  "Print where the environment for the given requirements lives. Nothing is built.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			record, err := c.app.Path(cmd.Context(), args, app.PathOptions{CacheDir: cacheDir})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showKey, _ := cmd.Flags().GetBool("key"); showKey {
				_, _ = fmt.Fprintln(out, record.Key)
				return nil
			}
			_, _ = fmt.Fprintln(out, record.Root)
			if !record.Complete() {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "environment is not built")
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().Bool("key", false, "Print the environment key instead of its directory")
	return cmd
}
