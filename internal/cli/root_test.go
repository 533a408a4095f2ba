//go:build unix

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brandonbloom/bypass/internal/dispatch"
)

type testRunner struct {
	*runner
	wrapper string
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

func newTestRunner(t *testing.T) testRunner {
	t.Helper()
	t.Setenv("BYPASS_DEBUG", "")
	t.Setenv("BYPASS_LOG_FORMAT", "")

	root := t.TempDir()
	wrapDir := filepath.Join(root, "wrap")
	nextDir := filepath.Join(root, "next")
	for dir, body := range map[string]string{
		wrapDir: "exit 99",
		nextDir: `printf '[%s]' "$@"`,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		names := []string{"tool"}
		if dir == nextDir {
			names = append(names, "__complete")
		}
		for _, name := range names {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
				t.Fatal(err)
			}
		}
	}

	var stdout, stderr bytes.Buffer
	d := &dispatch.Dispatcher{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return testRunner{
		runner: &runner{
			env:        dispatch.Env{"PATH=" + wrapDir + ":" + nextDir + ":/usr/bin:/bin"},
			dispatcher: d,
			stderr:     &stderr,
		},
		wrapper: filepath.Join(wrapDir, "tool"),
		stdout:  &stdout,
		stderr:  &stderr,
	}
}

func (tr testRunner) invoke(args ...string) error {
	return tr.execute(tr.command(), args)
}

func TestExecuteRequiresCommandPath(t *testing.T) {
	tr := newTestRunner(t)
	if err := tr.invoke(); !errors.Is(err, dispatch.ErrMissingCommand) {
		t.Fatalf("got %v, want ErrMissingCommand", err)
	}
}

func TestExecuteForwardsFlagsVerbatim(t *testing.T) {
	tr := newTestRunner(t)
	if err := tr.invoke(tr.wrapper, "--help", "-v", "--", "x"); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	if tr.status != 0 {
		t.Fatalf("status = %d, want 0", tr.status)
	}
	if got, want := tr.stdout.String(), "[--help][-v][--][x]"; got != want {
		t.Fatalf("child saw %q, want %q", got, want)
	}
	if tr.stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %q", tr.stderr)
	}
}

func TestExecuteReportsNotFound(t *testing.T) {
	tr := newTestRunner(t)
	missing := filepath.Join(filepath.Dir(tr.wrapper), "bypass-cli-missing")
	if err := tr.invoke(missing); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	if tr.status != dispatch.NotFoundStatus {
		t.Fatalf("status = %d, want %d", tr.status, dispatch.NotFoundStatus)
	}
}

func TestExecuteDebugTrace(t *testing.T) {
	tr := newTestRunner(t)
	t.Setenv("BYPASS_DEBUG", "1")
	t.Setenv("BYPASS_LOG_FORMAT", "logfmt")

	if err := tr.invoke(tr.wrapper, "a"); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	trace := tr.stderr.String()
	for _, want := range []string{"planned dispatch", "truncated=true", "child finished"} {
		if !strings.Contains(trace, want) {
			t.Fatalf("debug trace missing %q:\n%s", want, trace)
		}
	}
}

func TestExecuteIgnoresInvalidSettings(t *testing.T) {
	tr := newTestRunner(t)
	t.Setenv("BYPASS_LOG_FORMAT", "xml")

	if err := tr.invoke(tr.wrapper, "a"); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	if got := tr.stdout.String(); got != "[a]" {
		t.Fatalf("child saw %q, want [a]", got)
	}
	if !strings.Contains(tr.stderr.String(), "BYPASS_LOG_FORMAT") {
		t.Fatalf("expected warning about settings, got %q", tr.stderr)
	}
}

func TestExecuteForwardsCompletionCommandName(t *testing.T) {
	tr := newTestRunner(t)
	if err := tr.invoke("__complete", "x", "--flag"); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	if tr.status != 0 {
		t.Fatalf("status = %d, want 0", tr.status)
	}
	if got, want := tr.stdout.String(), "[x][--flag]"; got != want {
		t.Fatalf("child saw %q, want %q", got, want)
	}
}
