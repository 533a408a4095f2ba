//go:build unix || windows

package dispatch

import (
	"os"
	"syscall"
)

func outcomeOf(state *os.ProcessState) Outcome {
	if state == nil {
		return Outcome{}
	}
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return Outcome{}
	}
	switch {
	case ws.Exited():
		return Outcome{Kind: Exited, Code: ws.ExitStatus()}
	case ws.Signaled():
		return Outcome{Kind: Signaled, Signal: ws.Signal()}
	default:
		return Outcome{}
	}
}
