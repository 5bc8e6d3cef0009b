// Package report renders validation results for humans: findings grouped by
// table and code, one line each, followed by a pass/fail summary. Exit-status
// semantics live here so every caller agrees on them.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sjbrg/swedish-geodata/internal/geodata/check"
	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
)

// Exit codes. Findings and fatal load failures are distinguished so CI can
// tell bad data from a broken checkout.
const (
	ExitOK        = 0
	ExitFindings  = 1
	ExitLoadError = 2
)

// Options controls rendering.
type Options struct {
	Styles Styles
	RunID  string
}

// ExitCode maps a result to the process exit status.
func ExitCode(res *check.Result) int {
	if res.OK() {
		return ExitOK
	}
	return ExitFindings
}

// Render writes the full report. Tables appear in schema order; within a
// table, findings are grouped by code in first-seen order and printed one
// per line with severity marks.
func Render(w io.Writer, res *check.Result, opts Options) {
	s := opts.Styles

	if opts.RunID != "" {
		fmt.Fprintln(w, s.Muted.Render("run "+opts.RunID))
	}

	for _, spec := range schema.All() {
		findings := res.TableFindings(spec.Name)

		fmt.Fprintln(w, s.Header.Render(rule(spec.Filename)))
		if len(findings) == 0 {
			fmt.Fprintln(w, "  "+s.Pass.Render("ok"))
			continue
		}

		for _, group := range groupByCode(findings) {
			for _, f := range group {
				fmt.Fprintln(w, "  "+mark(s, f.Code.Severity())+" "+f.String())
			}
		}
	}

	// Findings that carry no known table name.
	for _, f := range res.Findings {
		if !knownTable(f.Table) {
			fmt.Fprintln(w, "  "+mark(s, f.Code.Severity())+" "+f.String())
		}
	}

	fmt.Fprintln(w, s.Header.Render(rule("summary")))
	if res.OK() {
		fmt.Fprintln(w, s.Pass.Render("All checks passed."))
		return
	}
	fmt.Fprintln(w, s.Fail.Render(fmt.Sprintf("%d finding(s) in %d table(s).",
		res.Count(), tableCount(res))))
}

// groupByCode splits findings into per-code groups, keeping both group order
// and in-group order stable by first appearance.
func groupByCode(findings []check.Finding) [][]check.Finding {
	var order []check.Code
	byCode := make(map[check.Code][]check.Finding)
	for _, f := range findings {
		if _, seen := byCode[f.Code]; !seen {
			order = append(order, f.Code)
		}
		byCode[f.Code] = append(byCode[f.Code], f)
	}

	groups := make([][]check.Finding, 0, len(order))
	for _, code := range order {
		groups = append(groups, byCode[code])
	}
	return groups
}

func tableCount(res *check.Result) int {
	tables := make(map[string]struct{})
	for _, f := range res.Findings {
		tables[f.Table] = struct{}{}
	}
	return len(tables)
}

// Tables lists the table names present in the result, sorted.
func Tables(res *check.Result) []string {
	set := make(map[string]struct{})
	for _, f := range res.Findings {
		set[f.Table] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func knownTable(name string) bool {
	for _, spec := range schema.All() {
		if spec.Name == name {
			return true
		}
	}
	return false
}

func mark(s Styles, sev check.Severity) string {
	switch sev {
	case check.SeverityHigh:
		return s.SevHigh.Render("✗")
	case check.SeverityMedium:
		return s.SevMed.Render("✗")
	default:
		return s.SevLow.Render("✗")
	}
}

func rule(title string) string {
	const width = 60
	pad := width - len(title) - 4
	if pad < 0 {
		pad = 0
	}
	return "== " + title + " " + strings.Repeat("=", pad)
}
