// Package findings is an interactive browser over one validation run's
// findings: viewport scrolling with severity and table filters, for working
// through a long defect list without grepping a flat report.
package findings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sjbrg/swedish-geodata/internal/geodata/check"
	"github.com/sjbrg/swedish-geodata/internal/geodata/report"
)

// SeverityFilter tracks which severities are shown.
type SeverityFilter struct {
	Low    bool
	Medium bool
	High   bool
}

func allSeverities() SeverityFilter {
	return SeverityFilter{Low: true, Medium: true, High: true}
}

// Model is the bubbletea model for the findings browser.
type Model struct {
	width  int
	height int
	ready  bool

	viewport viewport.Model

	all      []check.Finding
	filtered []check.Finding

	severityFilter SeverityFilter

	// tables cycles "" (all) -> each table with findings.
	tables     []string
	tableIndex int // -1 = all tables
}

// New creates a browser over a finished validation run.
func New(res *check.Result) Model {
	return Model{
		all:            res.Findings,
		severityFilter: allSeverities(),
		tables:         report.Tables(res),
		tableIndex:     -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // title + filter bar
		footerHeight := 2 // help line
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.refresh()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "1":
			m.severityFilter.Low = !m.severityFilter.Low
			m.refresh()
		case "2":
			m.severityFilter.Medium = !m.severityFilter.Medium
			m.refresh()
		case "3":
			m.severityFilter.High = !m.severityFilter.High
			m.refresh()
		case "0":
			m.severityFilter = allSeverities()
			m.refresh()
		case "t":
			m.tableIndex++
			if m.tableIndex >= len(m.tables) {
				m.tableIndex = -1
			}
			m.refresh()
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("swedish-geodata findings"))
	b.WriteString("\n")
	b.WriteString(m.filterBar())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("1/2/3 toggle severity · 0 all · t cycle table · g/G top/bottom · q quit"))
	return b.String()
}

func (m *Model) refresh() {
	m.applyFilters()
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

func (m *Model) applyFilters() {
	table := ""
	if m.tableIndex >= 0 && m.tableIndex < len(m.tables) {
		table = m.tables[m.tableIndex]
	}

	m.filtered = m.filtered[:0]
	for _, f := range m.all {
		if table != "" && f.Table != table {
			continue
		}
		if !m.severityEnabled(f.Code.Severity()) {
			continue
		}
		m.filtered = append(m.filtered, f)
	}
}

func (m Model) severityEnabled(sev check.Severity) bool {
	switch sev {
	case check.SeverityLow:
		return m.severityFilter.Low
	case check.SeverityMedium:
		return m.severityFilter.Medium
	case check.SeverityHigh:
		return m.severityFilter.High
	}
	return true
}

func (m Model) content() string {
	if len(m.all) == 0 {
		return PassStyle.Render("All checks passed.")
	}
	if len(m.filtered) == 0 {
		return HelpStyle.Render("no findings match the current filters")
	}

	var b strings.Builder
	for _, f := range m.filtered {
		b.WriteString(severityStyle(f.Code.Severity())(fmt.Sprintf("%-6s", f.Code.Severity())))
		b.WriteString(" ")
		b.WriteString(f.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) filterBar() string {
	parts := []string{
		filterLabel("low", m.severityFilter.Low),
		filterLabel("medium", m.severityFilter.Medium),
		filterLabel("high", m.severityFilter.High),
	}

	table := "all tables"
	if m.tableIndex >= 0 && m.tableIndex < len(m.tables) {
		table = m.tables[m.tableIndex]
	}
	parts = append(parts, FilterActiveStyle.Render(table))
	parts = append(parts, fmt.Sprintf("%d/%d shown", len(m.filtered), len(m.all)))

	return FilterBarStyle.Render(strings.Join(parts, " · "))
}

func filterLabel(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return name
}

func severityStyle(sev check.Severity) func(...string) string {
	switch sev {
	case check.SeverityHigh:
		return SevHighStyle.Render
	case check.SeverityMedium:
		return SevMediumStyle.Render
	default:
		return SevLowStyle.Render
	}
}
