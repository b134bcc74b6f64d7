package ui

import "strings"

func (m Model) renderHelp() string {
	s := m.theme.Styles()

	rows := []struct {
		keys, desc string
	}{
		{"tab / shift+tab", "move between form fields"},
		{"enter", "open dropdowns, pick suggestions, search"},
		{"↑/↓ or k/j", "move through lists"},
		{"←/→", "adjust adults in the focused room"},
		{"+ / -", "adjust children in the focused room"},
		{"n / d", "add or remove a room"},
		{"esc or b", "close panels, go back"},
		{"ctrl+g", "start a new search"},
		{"ctrl+t", "cycle color theme"},
		{"f1", "toggle this help"},
		{"ctrl+c", "quit"},
	}

	var b strings.Builder
	b.WriteString(s.Header.Render("Keyboard reference"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString("  " + s.AccentText.Render(padLabel(row.keys)) + "  " + s.Text.Render(row.desc) + "\n")
	}
	b.WriteString("\n" + s.MutedText.Render("Press any key to close.") + "\n")
	return b.String()
}
