package main

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// fatalPrefix labels launch failures, in red when stderr is a terminal.
func fatalPrefix(stderr *os.File) string {
	c := color.New(color.FgHiRed, color.Bold)
	if color.NoColor || !term.IsTerminal(int(stderr.Fd())) {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.Sprint("bypass:") + " "
}
