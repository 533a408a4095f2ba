package dispatch

import (
	"errors"
	"slices"

	"github.com/brandonbloom/bypass/internal/searchpath"
)

// ErrMissingCommand indicates no command path was supplied.
var ErrMissingCommand = errors.New("missing command path; usage: bypass <command-path> [args...]")

// Invocation describes the command being bypassed.
type Invocation struct {
	// Path is the full path through which the wrapper was located, usually "$0".
	Path string
	// Name is the base name looked up again on the truncated search path.
	Name string
	// Args are forwarded to the next command verbatim.
	Args []string
}

// ParseInvocation builds an Invocation from "<command-path> [args...]".
func ParseInvocation(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, ErrMissingCommand
	}
	return Invocation{
		Path: args[0],
		Name: searchpath.Base(args[0]),
		Args: slices.Clone(args[1:]),
	}, nil
}
