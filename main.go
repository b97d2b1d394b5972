// Package main is the entry point for the sqlprep CLI.
// It provides line-oriented SQL artifact preparation for deploy pipelines.
package main

import (
	"sqlprep/cli/cmd"
)

func main() {
	cmd.Execute()
}
