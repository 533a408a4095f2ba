//go:build !(unix || windows)

package dispatch

import "os"

func outcomeOf(state *os.ProcessState) Outcome {
	if state == nil || !state.Exited() {
		return Outcome{}
	}
	return Outcome{Kind: Exited, Code: state.ExitCode()}
}
