//go:build unix

package dispatch

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

func describeSignal(sig syscall.Signal) string {
	name := unix.SignalName(sig)
	if name == "" {
		return fmt.Sprintf("signal %d", sig)
	}
	return fmt.Sprintf("%s (%d)", name, sig)
}
