// Package searchpath parses, truncates and searches PATH-style directory lists.
//
// Directory matching is plain string equality. Trailing slashes, symlinks and
// relative entries are never normalized, so "/usr/bin/" and "/usr/bin" are
// different directories here.
package searchpath

import (
	"os"
	"slices"
	"strings"
)

// Var is the environment variable holding the search path.
const Var = "PATH"

// Split parses a delimiter-separated search path. Empty entries are kept.
func Split(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, string(os.PathListSeparator))
}

// Join is the inverse of Split.
func Join(dirs []string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

// Dir returns the directory portion of path without cleaning it.
func Dir(path string) string {
	path = trimTrailingSeparators(path)
	i := strings.LastIndexByte(path, os.PathSeparator)
	if i < 0 {
		return "."
	}
	return trimTrailingSeparators(path[:i+1])
}

// Base returns the last element of path, ignoring trailing separators.
func Base(path string) string {
	path = trimTrailingSeparators(path)
	if i := strings.LastIndexByte(path, os.PathSeparator); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Truncate drops the first entry equal to the directory of invokingPath and
// every entry before it. When no entry matches, dirs is returned unchanged.
func Truncate(dirs []string, invokingPath string) []string {
	dir := Dir(invokingPath)
	i := slices.Index(dirs, dir)
	if i < 0 {
		return dirs
	}
	return slices.Clone(dirs[i+1:])
}

func trimTrailingSeparators(path string) string {
	for len(path) > 1 && path[len(path)-1] == os.PathSeparator {
		path = path[:len(path)-1]
	}
	return path
}
