// Package errors defines the structured error types shared by the reporting
// tools. Structural problems (missing columns, unreadable tables) abort a run
// before any row is processed; everything else is local to one row or entry
// and is reported through RowError so the run can continue.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// MissingColumnError reports that a required column could not be resolved in
// an input table. It is fatal for the whole run.
type MissingColumnError struct {
	Table      string   // logical table name, e.g. "supply chain report"
	Column     string   // logical column being resolved
	Candidates []string // header names that were tried
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("%s: missing required column %q", e.Table, e.Column)
	}
	return fmt.Sprintf("%s: missing required column %q (tried headers: %s)",
		e.Table, e.Column, strings.Join(e.Candidates, ", "))
}

// NewMissingColumn creates a MissingColumnError for the given table/column.
func NewMissingColumn(table, column string, candidates ...string) *MissingColumnError {
	return &MissingColumnError{Table: table, Column: column, Candidates: candidates}
}

// IsMissingColumn reports whether err is (or wraps) a MissingColumnError.
func IsMissingColumn(err error) bool {
	var mc *MissingColumnError
	return errors.As(err, &mc)
}

// RowError wraps a failure confined to a single input row. Callers log it and
// move on; it never aborts a run.
type RowError struct {
	Row    int    // zero-based row index in the source table
	Domain string // domain of the failed row, if known
	Err    error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	if e.Domain != "" {
		return fmt.Sprintf("row %d (%s): %v", e.Row, e.Domain, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Unwrap returns the underlying error.
func (e *RowError) Unwrap() error { return e.Err }

// NewRowError wraps err as a per-row failure.
func NewRowError(row int, domain string, err error) *RowError {
	return &RowError{Row: row, Domain: domain, Err: err}
}

// Sentinel errors for empty or unusable inputs.
var (
	// ErrEmptyTable is returned when an input file parses but holds no data rows.
	ErrEmptyTable = errors.New("input table has no data rows")
	// ErrNoSheet is returned when no worksheet in a workbook looks like the
	// expected report.
	ErrNoSheet = errors.New("no suitable worksheet found")
)
