// Copyright (c) 2025 Sqlprep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the sqlprep tool.
// It implements the subcommands that prepare SQL script files for deployment
// using the Cobra CLI framework: filtering out statements that reference
// disallowed schemas and rewriting INSERT statements to tolerate conflicts.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "sqlprep",
	Short:         "Prepare SQL script files for deployment",
	Long:          `Sqlprep is a command-line tool that performs line-oriented transformations on SQL script files before they are applied by a deploy pipeline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("sqlprep %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and prints any error to stderr before exiting
// with a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
