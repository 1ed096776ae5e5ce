// Package commands implements the CLI commands for piprun.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/piprun/internal/app"
	"go.trai.ch/piprun/internal/build"
	"go.trai.ch/piprun/internal/core/domain"
)

// CLI represents the command line interface for piprun.
type CLI struct {
	app     Application
	levels  LevelSetter
	rootCmd *cobra.Command
	runCmd  *cobra.Command
	args    []string
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, args []string, opts app.RunOptions) error
	List(ctx context.Context, opts app.ListOptions) ([]domain.Record, error)
	Clean(ctx context.Context, keys []string, opts app.CleanOptions) ([]string, error)
	Path(ctx context.Context, args []string, opts app.PathOptions) (domain.Record, error)
}

// LevelSetter changes the log level when --verbose is given.
type LevelSetter interface {
	SetLevel(level domain.LogLevel)
}

// New creates a new CLI instance with the given app. levels may be nil.
func New(a Application, levels LevelSetter) *CLI {
	c := &CLI{
		app:    a,
		levels: levels,
	}

	c.rootCmd = c.newRootCmd()
	c.rootCmd.AddCommand(c.newListCmd())
	c.rootCmd.AddCommand(c.newCleanCmd())
	c.rootCmd.AddCommand(c.newPathCmd())
	c.rootCmd.AddCommand(c.newVersionCmd())

	// Argument lists holding "--" always run a program, even when the first
	// requirement is spelled like a subcommand.
	c.runCmd = c.newRootCmd()

	return c
}

func (c *CLI) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "piprun [flags] [interpreter] requirement... -- [program-args...]",
		Short: "Run Python programs in cached virtualenvs",
		Long: `piprun builds a virtualenv holding the given requirements, caches it under
a key derived from the interpreter and requirements, and runs the interpreter
inside it with the arguments that follow "--".`,
		Example: `  piprun requests -- script.py
  piprun /usr/bin/python3.12 'six==1.16' -- -c 'import six'`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Registered before the default version flag so that -v stays with --verbose.
	rootCmd.PersistentFlags().String("cache-dir", "", "Directory holding cached environments")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress and debug information")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Flags end at the first requirement so that requirement options such as
	// "-e" reach the installer untouched.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && c.levels != nil {
			c.levels.SetLevel(domain.LogLevelDebug)
		}
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cacheDir, _ := cmd.Flags().GetString("cache-dir")
		return c.app.Run(cmd.Context(), invocationArgs(cmd, args), app.RunOptions{CacheDir: cacheDir})
	}

	return rootCmd
}

// invocationArgs restores the "--" separator that flag parsing consumes when
// it directly follows the flags.
func invocationArgs(cmd *cobra.Command, args []string) []string {
	n := cmd.ArgsLenAtDash()
	if n < 0 {
		return args
	}
	return slices.Concat(args[:n], []string{domain.Separator}, args[n:])
}

// Execute runs the command selected by the arguments with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	args := c.args
	if args == nil {
		args = os.Args[1:]
	}

	cmd := c.rootCmd
	if slices.Contains(args, domain.Separator) {
		cmd = c.runCmd
	}
	cmd.SetArgs(args)
	cmd.SetContext(ctx)
	return cmd.Execute()
}

// SetArgs sets the arguments for the CLI.
func (c *CLI) SetArgs(args []string) {
	c.args = args
}

// SetOutput sets the output and error streams of every command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	for _, cmd := range []*cobra.Command{c.rootCmd, c.runCmd} {
		cmd.SetOut(out)
		cmd.SetErr(err)
	}
}
