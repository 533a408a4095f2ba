package main

import (
	"log"
	"os"

	"github.com/brandonbloom/bypass/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(fatalPrefix(os.Stderr))

	code, err := cli.Execute()
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}
