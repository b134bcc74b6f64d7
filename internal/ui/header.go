package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// headerHeight is the fixed number of lines the top bar occupies.
const headerHeight = 3

func (m Model) renderHeader() string {
	s := m.theme.Styles()

	left := s.AccentText.Render("Voyago")
	right := s.MutedText.Render(fmt.Sprintf("%s · %s", m.ctrl.NationalityName(), m.ctrl.CurrencyName()))
	if m.ctrl.Loading() {
		right = m.spin.View() + " " + right
	}

	gap := m.width - visibleWidth(left) - visibleWidth(right)
	if gap < 1 {
		gap = 1
	}
	top := left + strings.Repeat(" ", gap) + right

	status := ""
	if m.health.IsOffline() {
		status = s.DangerText.Render("API unreachable — results may be stale")
	} else if m.health.LastError != nil {
		status = s.WarningText.Render("API connection unstable")
	}

	return top + "\n" + status + "\n" + s.FaintText.Render(strings.Repeat("─", max(m.width, 1)))
}

func (m Model) renderLoading() string {
	s := m.theme.Styles()
	return "\n " + m.spin.View() + s.MutedText.Render(" Loading...") + "\n"
}

func (m Model) renderFatal() string {
	s := m.theme.Styles()
	return "\n " + s.DangerText.Render(m.ctrl.Err()) + "\n\n " +
		s.MutedText.Render("Press ctrl+c to quit.") + "\n"
}

func (m Model) renderGlobalError() string {
	s := m.theme.Styles()
	return "\n " + s.DangerText.Render(m.ctrl.Err()) + "\n\n " +
		s.AccentText.Render("enter/esc") + s.MutedText.Render(" dismiss") + "\n"
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if matches(msg, m.keys.Confirm) || matches(msg, m.keys.Escape) {
		m.ctrl.ClearError()
	}
	return m, nil
}
