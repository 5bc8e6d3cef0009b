// Package check implements the validation pipeline over a loaded Dataset:
// structural, format, referential, and consistency checkers, each appending
// structured findings to a shared Result. No checker short-circuits; one run
// surfaces the complete defect list.
package check

import (
	"fmt"
	"strings"
)

// Code classifies a finding. Codes are stable identifiers; tests and tooling
// match on them instead of message text.
type Code string

const (
	// Structural
	CodeHeaderMismatch      Code = "HEADER_MISMATCH"
	CodeRowCountMismatch    Code = "ROW_COUNT_MISMATCH"
	CodeMalformedRow        Code = "MALFORMED_ROW"
	CodeEmptyField          Code = "EMPTY_FIELD"
	CodeEncodingViolation   Code = "ENCODING_VIOLATION"
	CodeLineEndingViolation Code = "LINE_ENDING_VIOLATION"
	CodeTrailingComma       Code = "TRAILING_COMMA"
	CodeEmptyRow            Code = "EMPTY_ROW"

	// Format
	CodeFormatViolation        Code = "FORMAT_VIOLATION"
	CodeNormalizationViolation Code = "NORMALIZATION_VIOLATION"

	// Referential
	CodeDuplicateKey      Code = "DUPLICATE_KEY"
	CodeDanglingReference Code = "DANGLING_REFERENCE"
	CodePrefixMismatch    Code = "PREFIX_MISMATCH"

	// Consistency
	CodeOrphanJoinRow        Code = "ORPHAN_JOIN_ROW"
	CodeJoinFieldMismatch    Code = "JOIN_FIELD_MISMATCH"
	CodeJoinCoverageMismatch Code = "JOIN_COVERAGE_MISMATCH"
)

// String returns the code identifier.
func (c Code) String() string {
	return string(c)
}

// Severity represents how serious a finding is. It only affects presentation
// order and browser filtering; any finding at all fails the run.
type Severity int

const (
	// SeverityLow covers cosmetic byte-level issues in the artifacts.
	SeverityLow Severity = iota

	// SeverityMedium covers structure and format defects within one table.
	SeverityMedium

	// SeverityHigh covers broken cross-table invariants.
	SeverityHigh
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Severity returns the severity class of a code.
func (c Code) Severity() Severity {
	switch c {
	case CodeDuplicateKey, CodeDanglingReference, CodePrefixMismatch,
		CodeOrphanJoinRow, CodeJoinFieldMismatch, CodeJoinCoverageMismatch:
		return SeverityHigh
	case CodeHeaderMismatch, CodeRowCountMismatch, CodeMalformedRow,
		CodeEmptyField, CodeFormatViolation:
		return SeverityMedium
	case CodeEncodingViolation, CodeLineEndingViolation, CodeTrailingComma,
		CodeEmptyRow, CodeNormalizationViolation:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// Finding is one validation defect with enough context to locate and fix the
// offending row without re-running with more verbosity.
type Finding struct {
	Code     Code
	Table    string
	Line     int    // 1-based line in the source file, 0 if file-level
	Key      string // primary key of the offending row, if known
	Column   string
	Value    string // actual value
	Expected string
	Message  string
}

// String renders the finding as a single report line.
func (f Finding) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", f.Code, f.Table)
	if f.Line > 0 {
		fmt.Fprintf(&b, ":%d", f.Line)
	}
	if f.Key != "" {
		fmt.Fprintf(&b, " key=%s", f.Key)
	}
	if f.Column != "" {
		fmt.Fprintf(&b, " column=%s", f.Column)
	}
	if f.Message != "" {
		fmt.Fprintf(&b, " %s", f.Message)
	}
	if f.Expected != "" || f.Value != "" {
		fmt.Fprintf(&b, " (expected %q, got %q)", f.Expected, f.Value)
	}
	return b.String()
}

// Result accumulates findings across the checker chain. It is owned by the
// chain and appended to by each checker in turn.
type Result struct {
	Findings []Finding

	undetermined map[string]bool
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{undetermined: make(map[string]bool)}
}

// Add appends a finding.
func (r *Result) Add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// OK reports whether the run produced no findings.
func (r *Result) OK() bool {
	return len(r.Findings) == 0
}

// Count returns the total number of findings.
func (r *Result) Count() int {
	return len(r.Findings)
}

// CodeCount returns how many findings carry the given code.
func (r *Result) CodeCount(code Code) int {
	n := 0
	for _, f := range r.Findings {
		if f.Code == code {
			n++
		}
	}
	return n
}

// TableFindings returns the findings for one table, in discovery order.
func (r *Result) TableFindings(table string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Table == table {
			out = append(out, f)
		}
	}
	return out
}

// MarkUndetermined flags a table whose header did not match the schema.
// Column meaning is undetermined for such a table, so row-level checks that
// read columns by name are skipped.
func (r *Result) MarkUndetermined(table string) {
	r.undetermined[table] = true
}

// Undetermined reports whether the table's columns cannot be trusted.
func (r *Result) Undetermined(table string) bool {
	return r.undetermined[table]
}
