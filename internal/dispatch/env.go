package dispatch

import (
	"os"
	"strings"
)

// Env is a snapshot of KEY=VALUE pairs. Methods never modify the receiver.
type Env []string

// Environ snapshots the current process environment.
func Environ() Env {
	return Env(os.Environ())
}

// Get returns the first value recorded for key.
func (e Env) Get(key string) string {
	value, _ := e.Lookup(key)
	return value
}

// Lookup is like Get but reports whether key was present.
func (e Env) Lookup(key string) (string, bool) {
	for _, entry := range e {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}

// With returns a copy of e where key is set to value. The first existing entry
// for key is replaced in place and later duplicates are dropped; otherwise the
// entry is appended.
func (e Env) With(key, value string) Env {
	out := make(Env, 0, len(e)+1)
	replaced := false
	for _, entry := range e {
		k, _, ok := strings.Cut(entry, "=")
		if !ok || k != key {
			out = append(out, entry)
			continue
		}
		if !replaced {
			out = append(out, key+"="+value)
			replaced = true
		}
	}
	if !replaced {
		out = append(out, key+"="+value)
	}
	return out
}
