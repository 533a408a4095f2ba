package dispatch

import (
	"fmt"
	"syscall"
)

// NotFoundStatus is reported when the next command cannot be located.
const NotFoundStatus = 127

// OutcomeKind tags how the child process terminated.
type OutcomeKind int

const (
	// NeitherReported means the wait status carried neither an exit code nor a signal.
	NeitherReported OutcomeKind = iota
	// Exited means the child returned normally with Code.
	Exited
	// Signaled means the child was terminated by Signal.
	Signaled
)

// Outcome is the observed termination of the child process.
type Outcome struct {
	Kind   OutcomeKind
	Code   int
	Signal syscall.Signal
}

// ExitStatus is the status this process should exit with to mirror the child.
func (o Outcome) ExitStatus() int {
	switch o.Kind {
	case Exited:
		return o.Code
	case Signaled:
		return SignalExitStatus(o.Signal)
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch o.Kind {
	case Exited:
		return fmt.Sprintf("exited with status %d", o.Code)
	case Signaled:
		return "terminated by " + describeSignal(o.Signal)
	default:
		return "terminated without a status"
	}
}

// SignalExitStatus converts a terminating signal into this process's exit
// status. The signal number is reused as-is rather than the shell's 128+n.
func SignalExitStatus(sig syscall.Signal) int {
	return int(sig)
}
