package dispatch

import (
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// commandLine renders argv as a bash-quoted line for diagnostics only.
func commandLine(name string, args []string) string {
	words := make([]string, 0, 1+len(args))
	for _, word := range append([]string{name}, args...) {
		quoted, err := syntax.Quote(word, syntax.LangBash)
		if err != nil {
			quoted = strconv.Quote(word)
		}
		words = append(words, quoted)
	}
	return strings.Join(words, " ")
}
