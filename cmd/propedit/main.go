package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/propedit/internal/cli"
)

const (
	cmdName = "propedit"

	shortDesc = "Edit properties files in place."
	longDesc  = `propedit updates, deletes and adds keys in line-oriented ".properties"
files while leaving every other line exactly as it was.

Deleted keys are commented out with a note recording when they were removed,
and new keys are appended in a marked block at the end of the file, so every
change remains visible in the file itself.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
