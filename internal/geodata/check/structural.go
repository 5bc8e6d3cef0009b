package check

import (
	"fmt"
	"strings"

	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
)

// StructuralChecker verifies encoding-level facts, header names and order,
// row counts, per-row field counts, and non-empty name columns.
type StructuralChecker struct {
	specs []schema.TableSpec
}

// NewStructuralChecker builds the checker for the given table specs. Specs
// must have their ExpectedRows resolved (the postal count comes from
// configuration).
func NewStructuralChecker(specs []schema.TableSpec) *StructuralChecker {
	return &StructuralChecker{specs: specs}
}

func (c *StructuralChecker) Name() string {
	return "structural"
}

func (c *StructuralChecker) Check(ds Source, res *Result) {
	for _, spec := range c.specs {
		t := ds.Table(spec.Name)
		if t == nil {
			continue
		}

		if t.HasBOM {
			res.Add(Finding{
				Code:    CodeEncodingViolation,
				Table:   spec.Name,
				Line:    1,
				Message: "file starts with a UTF-8 BOM",
			})
		}
		if t.HasCRLF {
			res.Add(Finding{
				Code:    CodeLineEndingViolation,
				Table:   spec.Name,
				Message: "CR or CRLF line endings, want LF",
			})
		}
		for _, line := range t.TrailingCommaLines {
			res.Add(Finding{
				Code:    CodeTrailingComma,
				Table:   spec.Name,
				Line:    line,
				Message: "line ends with a trailing comma",
			})
		}
		for _, line := range t.EmptyRowLines {
			res.Add(Finding{
				Code:    CodeEmptyRow,
				Table:   spec.Name,
				Line:    line,
				Message: "row has no values",
			})
		}

		headerOK := equalHeaders(t.Header, spec.Header)
		if !headerOK {
			res.Add(Finding{
				Code:     CodeHeaderMismatch,
				Table:    spec.Name,
				Line:     1,
				Expected: strings.Join(spec.Header, ","),
				Value:    strings.Join(t.Header, ","),
				Message:  "header does not match schema",
			})
			// Column meaning is undetermined from here on; later checkers
			// that read columns by name skip this table.
			res.MarkUndetermined(spec.Name)
		}

		if spec.ExpectedRows > 0 && len(t.Rows) != spec.ExpectedRows {
			res.Add(Finding{
				Code:     CodeRowCountMismatch,
				Table:    spec.Name,
				Expected: fmt.Sprintf("%d rows", spec.ExpectedRows),
				Value:    fmt.Sprintf("%d rows", len(t.Rows)),
				Message:  "row count does not match the expected snapshot",
			})
		}

		for _, row := range t.Rows {
			if len(row.Fields) != len(spec.Header) {
				res.Add(Finding{
					Code:     CodeMalformedRow,
					Table:    spec.Name,
					Line:     row.Line,
					Key:      row.Value(spec.KeyColumn),
					Expected: fmt.Sprintf("%d fields", len(spec.Header)),
					Value:    fmt.Sprintf("%d fields", len(row.Fields)),
					Message:  "field count does not match header",
				})
			}
		}

		// Empty-field checks need trustworthy column names.
		if !headerOK {
			continue
		}
		for _, row := range t.Rows {
			for _, col := range spec.NameColumns {
				if strings.TrimSpace(row.Value(col)) == "" {
					res.Add(Finding{
						Code:    CodeEmptyField,
						Table:   spec.Name,
						Line:    row.Line,
						Key:     row.Value(spec.KeyColumn),
						Column:  col,
						Message: "name column is empty or whitespace-only",
					})
				}
			}
		}
	}
}

func equalHeaders(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
