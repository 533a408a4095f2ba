package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brandonbloom/bypass/internal/config"
	"github.com/brandonbloom/bypass/internal/dispatch"
	"github.com/brandonbloom/bypass/internal/version"
)

// Execute runs bypass with the process's arguments and environment and
// returns the status the process should exit with. A non-nil error is a
// launch failure that should terminate the process abnormally.
func Execute() (int, error) {
	r := &runner{
		env:        dispatch.Environ(),
		dispatcher: dispatch.New(nil),
		stderr:     os.Stderr,
	}
	if err := r.execute(r.command(), os.Args[1:]); err != nil {
		return 1, err
	}
	return r.status, nil
}

// execute runs cmd with args. Cobra claims its hidden completion command
// names before any other dispatch, so those invoking paths skip Execute.
func (r *runner) execute(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		cmd.SetContext(context.Background())
		return r.run(cmd, args)
	}
	if args == nil {
		// Cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

type runner struct {
	env        dispatch.Env
	dispatcher *dispatch.Dispatcher
	stderr     io.Writer

	status int
}

func (r *runner) command() *cobra.Command {
	return &cobra.Command{
		Use:   "bypass <command-path> [args...]",
		Short: "Run the next command of the same name further down PATH",
		Long: `bypass re-runs the command found at <command-path> by its base name, with
that command's directory and every directory before it removed from PATH.
Wrapper scripts shadowing a real binary delegate to it with:

    exec bypass "$0" "$@"

Arguments are forwarded verbatim; bypass has no flags of its own.`,
		Args:               requireCommandPath,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               r.run,
	}
}

func requireCommandPath(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return dispatch.ErrMissingCommand
	}
	return nil
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	settings, cfgErr := config.Load()
	logger := newLogger(r.stderr, settings)
	if cfgErr != nil {
		logger.Warn("ignoring diagnostics settings", "err", cfgErr)
	}
	logger.Debug("bypass", "version", version.String(), "args", len(args))

	inv, err := dispatch.ParseInvocation(args)
	if err != nil {
		return err
	}

	r.dispatcher.Logger = logger
	status, err := r.dispatcher.Run(cmd.Context(), inv, r.env)
	if err != nil {
		return err
	}
	r.status = status
	return nil
}
