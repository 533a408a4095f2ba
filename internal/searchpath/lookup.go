package searchpath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
)

// ErrNotFound is reported when no directory holds an executable of the given name.
var ErrNotFound = exec.ErrNotFound

// Lookup resolves name against dirs the way execvp does. Names containing a
// separator are checked as-is. Empty entries stand for the current directory.
// Entries are used exactly as written; they are never cleaned.
//
// A candidate that exists but cannot be run is remembered and the search
// continues. If nothing later matches, the permission error is returned
// instead of ErrNotFound.
//
// The returned path always contains a separator, so os/exec will not search
// the calling process's own PATH for it again.
func Lookup(name string, dirs []string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) {
		err := checkExecutable(name)
		if err == nil {
			return name, nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", &fs.PathError{Op: "exec", Path: name, Err: err}
		}
		return "", &exec.Error{Name: name, Err: ErrNotFound}
	}
	if name == "" {
		return "", &exec.Error{Name: name, Err: ErrNotFound}
	}

	var denied error
	for _, dir := range dirs {
		if dir == "" {
			dir = "."
		}
		candidate := dir + string(os.PathSeparator) + name
		err := checkExecutable(candidate)
		if err == nil {
			return candidate, nil
		}
		if denied == nil && errors.Is(err, fs.ErrPermission) {
			denied = &fs.PathError{Op: "exec", Path: candidate, Err: err}
		}
	}
	if denied != nil {
		return "", denied
	}
	return "", &exec.Error{Name: name, Err: fmt.Errorf("%w in %d search path entries", ErrNotFound, len(dirs))}
}
