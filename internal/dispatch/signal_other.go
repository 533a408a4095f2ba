//go:build !unix

package dispatch

import (
	"fmt"
	"syscall"
)

func describeSignal(sig syscall.Signal) string {
	return fmt.Sprintf("signal %d", sig)
}
