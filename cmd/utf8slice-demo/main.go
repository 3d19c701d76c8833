package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/utf8slice"
)

var samples = []string{
	"Hello, World!",
	"aé日\U0001f389 mixed widths",
	"日本語のテキスト",
	"The \U0001f680 goes to the \U0001f311!",
}

type model struct {
	sample int
	begin  int
	end    int

	keys  keyMap
	style style
}

func newModel() model {
	m := model{
		keys:  defaultKeyMap(),
		style: defaultStyle(),
	}
	m.end = utf8slice.Len(m.text())
	return m
}

func (m model) text() string { return samples[m.sample] }

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := utf8slice.Len(m.text())
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.BeginLeft):
		m.begin = clamp(m.begin-1, 0, m.end)
	case key.Matches(keyMsg, m.keys.BeginRight):
		m.begin = clamp(m.begin+1, 0, m.end)
	case key.Matches(keyMsg, m.keys.EndLeft):
		m.end = clamp(m.end-1, m.begin, n)
	case key.Matches(keyMsg, m.keys.EndRight):
		m.end = clamp(m.end+1, m.begin, n)
	case key.Matches(keyMsg, m.keys.NextSample):
		m.sample = (m.sample + 1) % len(samples)
		m.begin = 0
		m.end = utf8slice.Len(m.text())
	}
	return m, nil
}

func (m model) View() string {
	s := m.text()
	prefix := utf8slice.Till(s, m.begin)
	selected := utf8slice.Slice(s, m.begin, m.end)
	suffix := utf8slice.From(s, m.end)

	var sb strings.Builder
	sb.WriteString(m.style.Title.Render("utf8slice demo"))
	sb.WriteString("\n\n  ")
	sb.WriteString(m.style.Text.Render(prefix))
	sb.WriteString(m.style.Selection.Render(selected))
	sb.WriteString(m.style.Text.Render(suffix))
	sb.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"range", fmt.Sprintf("[%d, %d) of %d characters", m.begin, m.end, utf8slice.Len(s))},
		{"slice", fmt.Sprintf("%q", selected)},
		{"bytes", fmt.Sprintf("[%d, %d) of %d", len(prefix), len(s)-len(suffix), len(s))},
		{"width", fmt.Sprintf("%d columns", runewidth.StringWidth(selected))},
	}
	for _, row := range rows {
		sb.WriteString("  ")
		sb.WriteString(m.style.Label.Render(fmt.Sprintf("%-6s", row.label)))
		sb.WriteString(m.style.Value.Render(row.value))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.style.Help.Render(helpLine(m.keys)))
	sb.WriteString("\n")
	return sb.String()
}

func helpLine(k keyMap) string {
	parts := make([]string, 0, 6)
	for _, b := range []key.Binding{k.BeginLeft, k.BeginRight, k.EndLeft, k.EndRight, k.NextSample, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "  " + strings.Join(parts, " · ")
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func main() {
	p := tea.NewProgram(newModel())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
