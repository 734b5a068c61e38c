// Package cmd wires foresite's commands.
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/carlwiedemann/foresite/internal/config"
	"github.com/carlwiedemann/foresite/internal/output"
	"github.com/carlwiedemann/foresite/internal/paths"
)

// app carries resolved configuration from the root command to its subcommands.
type app struct {
	overrides config.Options
	verbose   bool
	cfg       *config.Config
	now       func() time.Time
}

func (a *app) paths() paths.Paths {
	return paths.New(a.cfg.Root)
}

// Execute runs the root command with configuration from the environment.
func Execute() error {
	return NewRootCmd(config.Options{}).Execute()
}

// NewRootCmd creates the root command. Non-zero overrides win over the environment.
func NewRootCmd(overrides config.Options) *cobra.Command {
	return newRootCmd(&app{overrides: overrides, now: time.Now})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "foresite",
		Short: "Minimal static site generator",
		Long: `Foresite turns a directory of markdown posts into static HTML pages
plus an index, using templates you can edit.

The project root is taken from ` + config.EnvPrefix + `_ROOT, or the current
working directory when that is unset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initializeConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output (env: "+config.EnvPrefix+"_VERBOSE)")

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newTouchCmd(a))
	rootCmd.AddCommand(newBuildCmd(a))
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

func (a *app) initializeConfig(cmd *cobra.Command) error {
	opts := a.overrides
	opts.Verbose = opts.Verbose || a.verbose

	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}
	a.cfg = cfg

	output.SetupLogging(cmd.ErrOrStderr(), cfg.Verbose)
	output.Debug("initializing CLI", "root", cfg.Root, "verbose", cfg.Verbose)

	return nil
}
