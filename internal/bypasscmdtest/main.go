// bypasscmdtest is a small internal harness for transcript tests.
//
// It provisions a disposable sandbox under `/tmp/bypass-transcripts/sandbox-<id>`
// holding three PATH layers of fixture commands, then runs an arbitrary command
// with those layers prepended to PATH and returns the command's exit code.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(newTool().runCLI(context.Background(), os.Args[1:]))
}
