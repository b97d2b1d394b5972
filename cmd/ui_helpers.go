package cmd

import (
	"fmt"

	"github.com/pterm/pterm"

	"sqlprep/cli/internal/filter"
	"sqlprep/cli/internal/rewrite"
)

// printFilterSummary reports the outcome of a filter run on stdout.
func printFilterSummary(destination string, stats filter.Stats) {
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Destination: ") +
		pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(destination))
	if stats.Dropped > 0 {
		pterm.Success.Println(fmt.Sprintf("Kept %d statement(s), dropped %d", stats.Kept, stats.Dropped))
		return
	}
	pterm.Success.Println(fmt.Sprintf("Kept all %d statement(s)", stats.Kept))
}

// printConflictSummary reports the outcome of a rewrite run on stdout.
func printConflictSummary(output string, stats rewrite.Stats) {
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Output: ") +
		pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(output))
	pterm.Success.Println(fmt.Sprintf("Rewrote %d INSERT statement(s), passed %d line(s) through", stats.Rewritten, stats.Passed))
}
