//go:build unix

package searchpath

import (
	"os"

	"golang.org/x/sys/unix"
)

// checkExecutable mirrors what execve would say about path: nil when it can
// be run, EACCES for directories and files without execute permission.
func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return unix.EACCES
	}
	return unix.Access(path, unix.X_OK)
}
