// Copyright (c) 2025 Sqlprep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sqlstmt provides line-oriented SQL statement handling for the sqlprep CLI.
// It splits SQL text into statements using the trailing-semicolon heuristic and
// offers the predicates the filter and rewrite pipelines share.
//
// The heuristic is intentionally not a SQL parser: a statement ends on the first
// line whose right-trimmed form ends with ";". Semicolons inside string literals,
// comments, or dollar-quoted blocks are not recognized. Downstream pipelines depend
// on this exact behavior, so it must stay bit-compatible.
package sqlstmt

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// OnConflictSuffix is the clause appended to rewritten INSERT statements.
const OnConflictSuffix = " ON CONFLICT DO NOTHING;\n"

// LineReader yields lines from r with their original terminators intact.
// The final line is returned even when it lacks a trailing newline.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line including its terminator, or io.EOF when the
// input is exhausted.
func (lr *LineReader) Next() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

// EndsStatement reports whether line closes the current statement, i.e. its
// right-trimmed form ends with ";".
func EndsStatement(line string) bool {
	return strings.HasSuffix(strings.TrimRightFunc(line, unicode.IsSpace), ";")
}

// Split reads r to EOF and returns the statements in order. Each statement is
// the byte-exact concatenation of its lines. A non-empty buffer left at EOF
// (no terminating semicolon) is emitted as a final statement.
func Split(r io.Reader) ([]string, error) {
	lr := NewLineReader(r)
	var (
		statements []string
		buf        strings.Builder
	)
	for {
		line, err := lr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		buf.WriteString(line)
		if EndsStatement(line) {
			statements = append(statements, buf.String())
			buf.Reset()
		}
	}
	if buf.Len() > 0 {
		statements = append(statements, buf.String())
	}
	return statements, nil
}

// ReferencesSchema reports whether stmt references any of the given schemas,
// matching "<schema>." or a double-quoted "<schema>" case-insensitively.
func ReferencesSchema(stmt string, schemas []string) bool {
	lower := strings.ToLower(stmt)
	for _, schema := range schemas {
		name := strings.ToLower(schema)
		if strings.Contains(lower, name+".") || strings.Contains(lower, `"`+name+`"`) {
			return true
		}
	}
	return false
}

// IsInsertStart reports whether line opens an INSERT statement. The check is
// an upper-cased prefix match, so leading whitespace defeats it; that matches
// the dumps the deploy pipeline produces.
func IsInsertStart(line string) bool {
	return strings.HasPrefix(strings.ToUpper(line), "INSERT INTO")
}

// AppendOnConflict strips the statement's trailing whitespace and terminating
// semicolon run, then appends the ON CONFLICT DO NOTHING clause and a newline.
func AppendOnConflict(stmt string) string {
	trimmed := strings.TrimRightFunc(stmt, unicode.IsSpace)
	trimmed = strings.TrimRight(trimmed, ";")
	return trimmed + OnConflictSuffix
}
