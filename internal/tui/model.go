// Package tui provides the Bubble Tea interactive checker.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/passmeter/internal/analyzer"
	"github.com/verte-zerg/passmeter/internal/model"
	"github.com/verte-zerg/passmeter/internal/stats"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
)

var levelStyles = map[model.StrengthLevel]lipgloss.Style{
	model.VeryWeak:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
	model.Weak:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FA8C16")).Bold(true),
	model.Medium:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
	model.Strong:    lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true),
	model.Excellent: lipgloss.NewStyle().Foreground(lipgloss.Color("#13C2C2")).Bold(true),
}

// Model implements the live password checker UI. Analysis reruns on every
// keystroke; Enter folds the current result into the session aggregator.
type Model struct {
	analyzer *analyzer.Analyzer
	session  *stats.Aggregator

	input  textinput.Model
	result *model.AnalysisResult
	masked bool

	width  int
	height int

	folded int
	err    error
}

// NewModel constructs the interactive checker model.
func NewModel(a *analyzer.Analyzer, session *stats.Aggregator) *Model {
	input := textinput.New()
	input.Placeholder = "type a password"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()
	return &Model{
		analyzer: a,
		session:  session,
		input:    input,
		masked:   true,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			m.masked = !m.masked
			if m.masked {
				m.input.EchoMode = textinput.EchoPassword
			} else {
				m.input.EchoMode = textinput.EchoNormal
			}
			return m, nil
		case tea.KeyEnter:
			if m.result != nil && m.input.Value() != "" {
				m.session.Fold(*m.result)
				m.folded++
				m.input.SetValue("")
				m.result = nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) refresh() {
	value := m.input.Value()
	if value == "" {
		m.result = nil
		m.err = nil
		return
	}
	result, err := m.analyzer.Analyze(value)
	if err != nil {
		m.err = err
		m.result = nil
		return
	}
	m.err = nil
	m.result = &result
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("passmeter") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(warnStyle.Render(m.err.Error()) + "\n")
	case m.result == nil:
		b.WriteString(labelStyle.Render("Waiting for input...") + "\n")
	default:
		m.renderResult(&b)
	}

	b.WriteString("\n" + m.footer())
	return b.String()
}

func (m *Model) renderResult(b *strings.Builder) {
	r := m.result
	level := levelStyles[r.Strength]

	fmt.Fprintf(b, "%s %s  %s\n",
		labelStyle.Render("Strength:"),
		level.Render(r.Strength.String()),
		valueStyle.Render(fmt.Sprintf("%.0f/%d", r.TotalScore, r.MaxScore)))
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render("Entropy: "),
		valueStyle.Render(fmt.Sprintf("%.1f bits (charset %d)", r.Entropy, r.CharSetSize)))

	bar := scoreBar(r.Percentage, m.barWidth())
	fmt.Fprintf(b, "%s %s\n\n", labelStyle.Render("Score:   "), level.Render(bar))

	for _, cat := range r.Breakdown {
		name := strings.ReplaceAll(cat.Category, "_", " ")
		fmt.Fprintf(b, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-16s", name)),
			valueStyle.Render(fmt.Sprintf("%+.1f", cat.Points)))
	}
	b.WriteString("\n")

	if r.IsCommon {
		b.WriteString(warnStyle.Render("Common password detected") + "\n")
	}
	for _, p := range r.Patterns {
		b.WriteString(warnStyle.Render("Pattern: "+p.String()) + "\n")
	}
	if !r.IsCommon && len(r.Patterns) == 0 {
		b.WriteString(okStyle.Render("No common password or patterns detected") + "\n")
	}

	for _, rec := range r.Recommendations {
		b.WriteString(labelStyle.Render("- "+rec) + "\n")
	}
}

func (m *Model) footer() string {
	session := ""
	if m.folded > 0 {
		snap := m.session.Snapshot()
		session = fmt.Sprintf("  session: %d checked, avg %.0f", snap.TotalAnalyzed, snap.AverageScore)
	}
	return footerStyle.Render("enter record · tab reveal · esc quit" + session)
}

func (m *Model) barWidth() int {
	width := m.width - 12
	if width < 10 {
		width = 10
	}
	if width > 40 {
		width = 40
	}
	return width
}

func scoreBar(percentage float64, width int) string {
	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
