// Argument parsing for the `bypasscmdtest` harness.
//
// Supported flags:
//   - `--detached` (leave the wrap layer off PATH; wrappers are still runnable by name)
//   - `--keep` (preserve the sandbox for debugging)
//   - `-h/--help`
package main

import (
	"errors"
	"flag"
	"io"
)

type options struct {
	detached bool
	keep     bool
	help     bool
}

func parseArgs(args []string) (options, []string, error) {
	var opts options

	fs := flag.NewFlagSet("bypasscmdtest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&opts.detached, "detached", false, "")
	fs.BoolVar(&opts.keep, "keep", false, "")

	fs.BoolVar(&opts.help, "help", false, "")
	fs.BoolVar(&opts.help, "h", false, "")

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}
	if opts.help {
		return opts, nil, nil
	}

	cmd := fs.Args()
	if len(cmd) == 0 {
		return options{}, nil, errors.New("missing command")
	}

	return opts, cmd, nil
}
