// Implementation of the `bypasscmdtest` harness.
//
// Key behaviors:
//   - Creates `/tmp/bypass-transcripts/sandbox-<id>` with `wrap`, `next` and `last`
//     layers; PATH becomes `wrap:next:last:$PATH` (`next:last:$PATH` with --detached).
//   - Wrapper scripts in `wrap` call `bypass "$0" "$@"`, so `bypass` must already be on PATH.
//   - Exports `BYPASS_SANDBOX` so fixtures can print paths relative to the sandbox.
//   - Honors `BYPASS_CMDTEST_TIMEOUT` (default 10s) to cap setup + command runtime.
//   - Honors `BYPASS_CMDTEST_ID` to isolate sandboxes for parallel tests.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/brandonbloom/bypass/internal/dispatch"
	"github.com/brandonbloom/bypass/internal/searchpath"
)

type tool struct {
	root string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

const defaultTimeout = 10 * time.Second

// Fixture layers, outermost first.
const (
	layerWrap = "wrap"
	layerNext = "next"
	layerLast = "last"
)

const wrapper = `exec bypass "$0" "$@"`

// fixtures maps layer -> command -> script body. Commands missing from a
// layer are simply absent there.
var fixtures = map[string]map[string]string{
	layerWrap: {
		"greet":  `echo "wrapped greet: $*"` + "\n" + wrapper,
		"chain":  wrapper,
		"status": wrapper,
		"die":    wrapper,
		"ghost":  wrapper,
		"relay":  wrapper,
		"where":  wrapper,
	},
	layerNext: {
		"greet":  `echo "next greet: $*"`,
		"chain":  `echo "next chain, passing on"` + "\n" + wrapper,
		"status": `exit "$1"`,
		"die":    `kill -TERM $$`,
		"relay":  `exec cat`,
		"where":  `first=${PATH%%:*}` + "\n" + `echo "first PATH entry: ${first#"$BYPASS_SANDBOX"/}"`,
	},
	layerLast: {
		"greet": `echo "last greet: $*"`,
		"chain": `echo "last chain: $*"`,
		"where": `echo "where: unreachable"`,
	},
}

func newTool() *tool {
	return &tool{
		root:   filepath.Join(os.TempDir(), "bypass-transcripts"),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func (t *tool) runCLI(ctx context.Context, args []string) int {
	ctx, cancel, timeout := withTimeoutFromEnv(ctx, "BYPASS_CMDTEST_TIMEOUT", defaultTimeout)
	if cancel != nil {
		defer cancel()
	}

	opts, cmdArgs, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(t.stderr, err)
		t.printUsage()
		return 2
	}
	if opts.help {
		t.printUsage()
		return 0
	}

	exitCode, err := t.run(ctx, opts, cmdArgs, timeout)
	if err != nil {
		fmt.Fprintln(t.stderr, err)
		return 1
	}
	return exitCode
}

func (t *tool) printUsage() {
	fmt.Fprint(t.stderr, `Usage: bypasscmdtest [options] -- <command> [args...]

Sets up a disposable sandbox of shadowing PATH layers, runs the given command
with them on PATH, and cleans up afterward. Intended for transcript tests.

Options:
  --detached   Leave the wrap layer off PATH (wrappers still resolve by name).
  --keep       Preserve the sandbox for debugging (prints its path).
`)
}

func (t *tool) run(ctx context.Context, opts options, cmdArgs []string, timeout time.Duration) (int, error) {
	if err := os.MkdirAll(t.root, 0o755); err != nil {
		return 1, err
	}

	sandbox := filepath.Join(t.root, sandboxDirName())
	if err := removeAllUnder(t.root, sandbox); err != nil {
		return 1, err
	}
	if err := t.installFixtures(sandbox); err != nil {
		return 1, err
	}

	env := dispatch.Environ()
	layers := []string{layerWrap, layerNext, layerLast}
	if opts.detached {
		layers = layers[1:]
	}
	dirs := make([]string, 0, len(layers))
	for _, layer := range layers {
		dirs = append(dirs, filepath.Join(sandbox, layer))
	}
	path := append(dirs, searchpath.Split(env.Get(searchpath.Var))...)
	env = env.With(searchpath.Var, searchpath.Join(path))
	env = env.With("BYPASS_SANDBOX", sandbox)
	env = env.With("NO_COLOR", "1")

	// Wrappers always resolve by name, even when their layer is off PATH.
	exe, err := searchpath.Lookup(cmdArgs[0], append([]string{filepath.Join(sandbox, layerWrap)}, path...))
	if err != nil {
		return 1, fmt.Errorf("bypasscmdtest: %w", err)
	}

	cmd := exec.CommandContext(ctx, exe, cmdArgs[1:]...)
	cmd.Args[0] = cmdArgs[0]
	cmd.Dir = sandbox
	cmd.Env = env
	cmd.Stdin = t.stdin
	cmd.Stdout = t.stdout
	cmd.Stderr = t.stderr

	runErr := cmd.Run()
	if runErr != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return 124, fmt.Errorf("bypasscmdtest: timed out after %s", timeout)
	}
	exitCode := exitStatus(runErr)

	if opts.keep {
		fmt.Fprintf(t.stderr, "sandbox kept at %s\n", sandbox)
	} else if cleanupErr := removeAllUnder(t.root, sandbox); cleanupErr != nil {
		return 1, cleanupErr
	}

	return exitCode, nil
}

func (t *tool) installFixtures(sandbox string) error {
	for layer, scripts := range fixtures {
		dir := filepath.Join(sandbox, layer)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		for name, body := range scripts {
			script := "#!/bin/sh\n" + body + "\n"
			if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
				return err
			}
		}
	}
	return nil
}

func removeAllUnder(root, target string) error {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return err
	}
	if rel == "." {
		return fmt.Errorf("refusing to remove root: %s", root)
	}
	if strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
		return fmt.Errorf("refusing to remove outside root: %s", target)
	}
	return os.RemoveAll(target)
}

func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return 127
}

func withTimeoutFromEnv(ctx context.Context, key string, def time.Duration) (context.Context, context.CancelFunc, time.Duration) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		raw = def.String()
	}
	if raw == "0" || raw == "0s" {
		return ctx, nil, 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		d = def
	}
	next, cancel := context.WithTimeout(ctx, d)
	return next, cancel, d
}

func sandboxDirName() string {
	raw := strings.TrimSpace(os.Getenv("BYPASS_CMDTEST_ID"))
	if raw != "" {
		safe := make([]rune, 0, len(raw))
		for _, r := range raw {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
				safe = append(safe, r)
				continue
			}
			safe = append(safe, '_')
		}
		id := strings.Trim(string(safe), "._-")
		if id != "" {
			return "sandbox-" + id
		}
	}

	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("sandbox-%d", os.Getpid())
	}
	return "sandbox-" + hex.EncodeToString(b[:])
}
