// Copyright (c) 2025 Sqlprep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"sqlprep/cli/internal/config"
	apperrors "sqlprep/cli/internal/errors"
	"sqlprep/cli/internal/logging"
	"sqlprep/cli/internal/rewrite"
)

// conflictCmd represents the add-on-conflict command. It streams the input
// file to the output, rewriting the terminating semicolon of every INSERT
// statement into " ON CONFLICT DO NOTHING;" and passing all other lines
// through verbatim. The [ERROR] prefix on the not-found message is part of
// the contract with the deploy pipeline.
var conflictCmd = &cobra.Command{
	Use:   "add-on-conflict <input.sql> <output.sql>",
	Short: "Rewrite INSERT statements to tolerate conflicting rows",
	Long: `The add-on-conflict command makes INSERT statements idempotent against
unique-constraint violations. Every statement starting with INSERT INTO has its
terminating semicolon replaced by " ON CONFLICT DO NOTHING;"; every row and every
other line is reproduced unchanged.`,

	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return apperrors.New(apperrors.Usage, "Usage: sqlprep add-on-conflict <input.sql> <output.sql>")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		if cfg.Verbose {
			os.Setenv("SQLPREP_VERBOSE", "1")
		}

		input, output := args[0], args[1]
		logging.Debugf("rewriting %s -> %s", input, output)

		stats, err := rewrite.Run(input, output)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return apperrors.New(apperrors.NotFound, "[ERROR] File not found: "+input)
			}
			return apperrors.Wrap(apperrors.IOFailed, "rewrite failed", err)
		}

		printConflictSummary(output, stats)
		return nil
	},
}

func init() {
	conflictCmd.Flags().Bool("verbose", false, "Enable verbose debug output")
	rootCmd.AddCommand(conflictCmd)
}
