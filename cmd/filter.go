// Copyright (c) 2025 Sqlprep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sqlprep/cli/internal/config"
	apperrors "sqlprep/cli/internal/errors"
	"sqlprep/cli/internal/filter"
	"sqlprep/cli/internal/logging"
)

// filterCmd represents the filter command. It splits the source file into
// statements on trailing-semicolon lines and drops every statement that
// references a disallowed schema (default: storage). The exit status and the
// not-found message are part of the contract with the deploy pipeline.
var filterCmd = &cobra.Command{
	Use:   "filter <source_sql> <destination_sql>",
	Short: "Drop statements that reference disallowed schemas",
	Long: `The filter command reads a SQL script, splits it into statements on lines
ending with a semicolon, and writes only the statements that do not reference a
disallowed schema to the destination file. Each kept statement is trimmed and
followed by a blank line.

The disallowed-schema set defaults to {storage} and can be overridden via the
sqlprep.yaml config file, the SQLPREP_DISALLOWED_SCHEMAS environment variable,
or the --schema flag.`,

	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return apperrors.New(apperrors.Usage, "Usage: sqlprep filter <source_sql> <destination_sql>")
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

		source, destination := args[0], args[1]
		if _, err := os.Stat(source); os.IsNotExist(err) {
			return apperrors.New(apperrors.NotFound, "Source SQL file not found: "+source)
		}

		logging.Debugf("filtering %s -> %s (disallowed schemas: %s)",
			source, destination, strings.Join(cfg.DisallowedSchemas, ", "))

		stats, err := filter.Run(source, destination, cfg.DisallowedSchemas)
		if err != nil {
			return apperrors.Wrap(apperrors.IOFailed, "filtering failed", err)
		}

		printFilterSummary(destination, stats)
		return nil
	},
}

func init() {
	filterCmd.Flags().StringSlice("schema", nil, "Disallowed schema name (repeatable; overrides config and env)")
	filterCmd.Flags().Bool("verbose", false, "Enable verbose debug output")
	rootCmd.AddCommand(filterCmd)
}
