// Copyright (c) 2025 Sqlprep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package rewrite implements the conflict rewriter: a single streaming pass that
// appends ON CONFLICT DO NOTHING to INSERT statements and passes every other
// line through verbatim.
package rewrite

import (
	"bufio"
	"io"
	"os"
	"strings"

	"sqlprep/cli/internal/sqlstmt"
)

// Stats summarizes one rewrite run.
type Stats struct {
	// Rewritten is the number of INSERT statements that received the conflict clause.
	Rewritten int
	// Passed is the number of lines copied through unchanged.
	Passed int
}

// Rewrite streams r to w. Two states: outside a statement, lines are written
// verbatim unless they open an INSERT; inside, lines accumulate until one ends
// in ";", at which point the statement is flushed with the conflict clause.
// An INSERT left unterminated at EOF is still rewritten.
//
// The opening INSERT line's own semicolon is never inspected; the terminator
// check starts on the following line. Pipelines rely on this exact sequencing.
func Rewrite(r io.Reader, w io.Writer) (Stats, error) {
	var (
		stats  Stats
		buf    strings.Builder
		inside bool
	)

	lr := sqlstmt.NewLineReader(r)
	bw := bufio.NewWriter(w)

	flush := func() error {
		if _, err := bw.WriteString(sqlstmt.AppendOnConflict(buf.String())); err != nil {
			return err
		}
		stats.Rewritten++
		buf.Reset()
		inside = false
		return nil
	}

	for {
		line, err := lr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}
		if !inside && sqlstmt.IsInsertStart(line) {
			inside = true
			buf.Reset()
			buf.WriteString(line)
			continue
		}
		if inside {
			buf.WriteString(line)
			if sqlstmt.EndsStatement(line) {
				if err := flush(); err != nil {
					return stats, err
				}
			}
			continue
		}
		if _, err := bw.WriteString(line); err != nil {
			return stats, err
		}
		stats.Passed++
	}
	if inside {
		if err := flush(); err != nil {
			return stats, err
		}
	}
	return stats, bw.Flush()
}

// Run rewrites the file at in into out. The output file is created or
// truncated only after the input opens successfully, so a missing input leaves
// no partial output behind. Both files are closed on every exit path.
func Run(in, out string) (Stats, error) {
	src, err := os.Open(in)
	if err != nil {
		return Stats{}, err
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return Stats{}, err
	}
	defer dst.Close()

	return Rewrite(src, dst)
}
