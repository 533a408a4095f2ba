// Package dispatch re-executes a shadowed command with the directory it was
// found in, and every directory before it, removed from the search path.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/brandonbloom/bypass/internal/searchpath"
)

// ErrNotFound indicates the next command could not be located or started
// because it does not exist.
var ErrNotFound = searchpath.ErrNotFound

// Dispatcher launches the next command and waits for it.
type Dispatcher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// New returns a Dispatcher wired to the process's own standard streams so
// the child inherits their descriptors directly.
func New(logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Plan is everything needed to launch the child, computed without side effects.
type Plan struct {
	Invocation Invocation
	SearchPath []string
	Env        Env
	Truncated  bool
}

// Plan truncates the search path recorded in env. When the invoking directory
// is not on the path, the child gets env exactly as given.
func (d *Dispatcher) Plan(inv Invocation, env Env) Plan {
	original := searchpath.Split(env.Get(searchpath.Var))
	dirs := searchpath.Truncate(original, inv.Path)
	plan := Plan{
		Invocation: inv,
		SearchPath: dirs,
		Env:        env,
	}
	if len(dirs) != len(original) {
		plan.Truncated = true
		plan.Env = env.With(searchpath.Var, searchpath.Join(dirs))
	}
	return plan
}

// Run launches the next command for inv and returns the status this process
// should exit with. A command that cannot be found yields NotFoundStatus and
// no error; every other launch failure is returned.
func (d *Dispatcher) Run(ctx context.Context, inv Invocation, env Env) (int, error) {
	logger := d.logger()
	plan := d.Plan(inv, env)
	logger.Debug("planned dispatch",
		"invoking", inv.Path,
		"name", inv.Name,
		"truncated", plan.Truncated,
		"path", searchpath.Join(plan.SearchPath),
	)

	outcome, err := d.launch(ctx, plan)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Debug("next command not found", "name", inv.Name, "err", err)
			return NotFoundStatus, nil
		}
		return 0, err
	}

	status := outcome.ExitStatus()
	logger.Debug("child finished", "outcome", outcome.String(), "status", status)
	return status, nil
}

func (d *Dispatcher) launch(ctx context.Context, plan Plan) (Outcome, error) {
	inv := plan.Invocation
	path, err := searchpath.Lookup(inv.Name, plan.SearchPath)
	if err != nil {
		return Outcome{}, err
	}

	cmd := exec.CommandContext(ctx, path, inv.Args...)
	cmd.Args[0] = inv.Name
	cmd.Env = plan.Env
	cmd.Stdin = d.Stdin
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr

	d.logger().Debug("launching", "exe", path, "command", commandLine(inv.Name, inv.Args))
	if err := cmd.Start(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Outcome{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return Outcome{}, fmt.Errorf("start %s: %w", path, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Outcome{}, fmt.Errorf("wait %s: %w", path, err)
		}
	}
	return outcomeOf(cmd.ProcessState), nil
}

func (d *Dispatcher) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}
