// Copyright (c) 2025 Sqlprep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package filter implements the statement filter: it splits a SQL source file
// into statements and drops every statement that references a disallowed schema.
// Kept statements are written trimmed, each followed by one blank line.
package filter

import (
	"bufio"
	"os"
	"strings"

	"sqlprep/cli/internal/sqlstmt"
)

// Stats summarizes one filtering run.
type Stats struct {
	// Kept is the number of statements written to the destination.
	Kept int
	// Dropped is the number of statements removed for disallowed-schema references.
	Dropped int
}

// Keep reports whether stmt survives filtering against the disallowed schemas.
func Keep(stmt string, disallowed []string) bool {
	return !sqlstmt.ReferencesSchema(stmt, disallowed)
}

// Run filters src into dst, dropping statements that reference any of the
// disallowed schemas. The destination is created or truncated. Both files are
// closed on every exit path.
func Run(src, dst string, disallowed []string) (Stats, error) {
	var stats Stats

	in, err := os.Open(src)
	if err != nil {
		return stats, err
	}
	defer in.Close()

	statements, err := sqlstmt.Split(in)
	if err != nil {
		return stats, err
	}

	out, err := os.Create(dst)
	if err != nil {
		return stats, err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, stmt := range statements {
		if !Keep(stmt, disallowed) {
			stats.Dropped++
			continue
		}
		if _, err := w.WriteString(strings.TrimSpace(stmt) + "\n\n"); err != nil {
			return stats, err
		}
		stats.Kept++
	}
	return stats, w.Flush()
}
