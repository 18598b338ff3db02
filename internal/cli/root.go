// Package cli provides the gridpath command tree: solving map files,
// running the built-in demonstration maze and reporting the version.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const rootLongDescription = `gridpath finds shortest routes through obstacle grids with A*.

Maps are rectangular character grids: 'S' marks the start, 'E' the goal,
'#' an obstacle, anything else is open floor. Moves are up, down, left and
right, each costing one step. Plain text files hold one row per line;
.yaml/.yml files may also rename the symbols.`

// app carries the per-process state shared by subcommands.
type app struct {
	v          *viper.Viper
	logger     *slog.Logger
	closer     io.Closer
	configPath string
}

// release closes the log sink opened by PersistentPreRunE. It is safe to
// call more than once.
func (a *app) release() error {
	err := a.closer.Close()
	a.closer = nopCloser{}
	return err
}

// NewRootCmd builds a fresh command tree with its own configuration.
// The log file is closed after successful runs only; use Execute to also
// close it when a command fails.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{
		v:      newConfig(),
		logger: slog.New(slog.DiscardHandler),
		closer: nopCloser{},
	}

	cmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "A* shortest paths on obstacle grids",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfig(a.v, a.configPath); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
			a.logger, a.closer = newLogger(a.v, cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.release()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd, a)
	cmd.AddCommand(newSolveCmd(a), newDemoCmd(a), newVersionCmd())

	return cmd, a
}

// run executes cmd and releases the log sink whether or not it failed;
// cobra skips post-run hooks when RunE returns an error.
func run(cmd *cobra.Command, a *app) error {
	err := cmd.Execute()
	if cerr := a.release(); err == nil {
		err = cerr
	}
	return err
}

func configureRootFlags(cmd *cobra.Command, a *app) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, configFlagName, "", "config file (default ./gridpath.yaml)")

	flags.BoolP(verboseFlagName, "v", false, "log debug records to stderr (or to the log file)")
	bindFlagToConfig(a.v, flags.Lookup(verboseFlagName), logVerboseKey)

	flags.String(logFileFlagName, "", "write logs to a rotating file")
	bindFlagToConfig(a.v, flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(v.BindPFlag(key, flag))
}

// Execute runs the command tree against os.Args and exits non-zero on error.
// This is called by main.main().
func Execute() {
	cmd, a := newRootCmd()
	if err := run(cmd, a); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}
