// Package main is the main package for the bytesize CLI.
package main

import (
	"os"

	"github.com/umwelt-studio/bytesize/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
