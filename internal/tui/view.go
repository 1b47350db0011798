package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle-engine/internal/game"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0")).MarginBottom(1)
	cellStyle   = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	cursorStyle = cellStyle.Underline(true).Background(lipgloss.Color("#3A3A3C"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)

	statusColors = map[game.LetterStatus]lipgloss.Color{
		game.StatusCorrect: lipgloss.Color("#538D4E"),
		game.StatusPresent: lipgloss.Color("#B59F3B"),
		game.StatusAbsent:  lipgloss.Color("#3A3A3C"),
	}
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WORDLE"))
	b.WriteString("\n")

	for r, row := range m.snap.Grid {
		cells := make([]string, 0, len(row))
		for c, cell := range row {
			active := m.snap.Status == game.InProgress && m.snap.Cursor == (game.Cursor{Row: r, Col: c})
			cells = append(cells, renderCell(cell, active))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, line := range keyboardRows {
		keys := make([]string, 0, len(line))
		for _, ch := range line {
			keys = append(keys, renderKey(ch, m.snap.Hints.Get(ch)))
		}
		b.WriteString(strings.Repeat(" ", i))
		b.WriteString(strings.Join(keys, ""))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(errText(m.err)))
	case m.notice != "":
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func renderCell(c game.Cell, active bool) string {
	letter := strings.ToUpper(c.Letter)
	if letter == "" {
		letter = "·"
	}
	st := cellStyle
	if active {
		st = cursorStyle
	}
	if col, ok := statusColors[c.Status]; ok {
		st = st.Background(col)
	}
	return st.Render(letter)
}

func renderKey(ch rune, s game.LetterStatus) string {
	st := cellStyle
	if col, ok := statusColors[s]; ok {
		st = st.Background(col)
	} else {
		st = st.Foreground(lipgloss.Color("#B0B0B0"))
	}
	return st.Render(strings.ToUpper(string(ch)))
}
