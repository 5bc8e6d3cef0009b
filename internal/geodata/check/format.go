package check

import (
	"fmt"
	"regexp"

	"golang.org/x/text/unicode/norm"

	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
)

// FormatChecker verifies that every code column matches its fixed-width
// zero-padded digit pattern and that name columns are NFC normalized. All
// offending cells are collected, not just the first.
type FormatChecker struct {
	specs    []schema.TableSpec
	patterns map[int]*regexp.Regexp
}

// NewFormatChecker builds the checker, compiling one pattern per code width.
func NewFormatChecker(specs []schema.TableSpec) *FormatChecker {
	patterns := make(map[int]*regexp.Regexp)
	for _, spec := range specs {
		for _, cc := range spec.CodeColumns {
			if _, ok := patterns[cc.Width]; !ok {
				patterns[cc.Width] = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, cc.Width))
			}
		}
	}
	return &FormatChecker{specs: specs, patterns: patterns}
}

func (c *FormatChecker) Name() string {
	return "format"
}

func (c *FormatChecker) Check(ds Source, res *Result) {
	for _, spec := range c.specs {
		if res.Undetermined(spec.Name) {
			continue
		}
		t := ds.Table(spec.Name)
		if t == nil {
			continue
		}

		for _, row := range t.Rows {
			for _, cc := range spec.CodeColumns {
				value := row.Value(cc.Name)
				if !c.patterns[cc.Width].MatchString(value) {
					res.Add(Finding{
						Code:     CodeFormatViolation,
						Table:    spec.Name,
						Line:     row.Line,
						Key:      row.Value(spec.KeyColumn),
						Column:   cc.Name,
						Value:    value,
						Expected: fmt.Sprintf("%d digits", cc.Width),
						Message:  "code does not match its fixed-width pattern",
					})
				}
			}

			for _, col := range spec.NameColumns {
				value := row.Value(col)
				if value != "" && !norm.NFC.IsNormalString(value) {
					res.Add(Finding{
						Code:    CodeNormalizationViolation,
						Table:   spec.Name,
						Line:    row.Line,
						Key:     row.Value(spec.KeyColumn),
						Column:  col,
						Value:   value,
						Message: "name is not NFC normalized",
					})
				}
			}
		}
	}
}
