package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := m.ctrl.Results()
	switch {
	case matches(msg, m.keys.Back):
		m.ctrl.BackToSearch()
		m.resultCursor = 0
		return m, nil

	case matches(msg, m.keys.Up):
		if m.resultCursor > 0 {
			m.resultCursor--
		}
	case matches(msg, m.keys.Down):
		if m.resultCursor < len(results)-1 {
			m.resultCursor++
		}
	case matches(msg, m.keys.Top):
		m.resultCursor = 0
	case matches(msg, m.keys.Bottom):
		if len(results) > 0 {
			m.resultCursor = len(results) - 1
		}

	case matches(msg, m.keys.Confirm):
		if m.resultCursor < len(results) {
			hotel := results[m.resultCursor]
			if m.ctrl.SelectHotel(hotel.ID) {
				return m, detailCmd(m.ctx, m.client, hotel.ID)
			}
		}
	}
	return m, nil
}

func (m Model) renderResults() string {
	s := m.theme.Styles()
	results := m.ctrl.Results()
	var b strings.Builder

	b.WriteString(s.Header.Render(m.resultsTitle(len(results))))
	b.WriteString("\n\n")

	if len(results) == 0 {
		b.WriteString(s.MutedText.Render("No hotels matched your search."))
		b.WriteString("\n\n")
		b.WriteString(s.FaintText.Render("Try different dates or another destination."))
		b.WriteString("\n\n")
		b.WriteString(s.AccentText.Render("esc") + s.MutedText.Render(" back to search"))
		b.WriteString("\n")
		return b.String()
	}

	visible, offset := visibleWindow(len(results), m.resultCursor, m.listHeight())
	for i := offset; i < offset+visible; i++ {
		b.WriteString(m.renderResultRow(i, i == m.resultCursor))
	}

	if m.resultCursor < len(results) {
		if amenities := results[m.resultCursor].Amenities; len(amenities) > 0 {
			b.WriteString("\n" + s.FaintText.Render(truncate(strings.Join(amenities, " · "), max(m.width-2, 20))) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.AccentText.Render("enter") + s.MutedText.Render(" details  ") +
		s.AccentText.Render("↑/↓") + s.MutedText.Render(" move  ") +
		s.AccentText.Render("esc") + s.MutedText.Render(" back"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) resultsTitle(count int) string {
	last := m.ctrl.LastSearch()
	if last == nil || last.Location == "" {
		return fmt.Sprintf("%d hotel(s) found", count)
	}
	return fmt.Sprintf("%d hotel(s) in %s", count, last.Location)
}

func (m Model) renderResultRow(i int, selected bool) string {
	s := m.theme.Styles()
	hotel := m.ctrl.Results()[i]

	price := "Price on request"
	if best, ok := hotel.BestPrice(); ok {
		price = formatPrice(best.Amount, best.Currency)
	}

	name := truncate(hotel.Name, 40)
	line := fmt.Sprintf("%-42s %-6s %-30s %s",
		name, starLabel(hotel.Stars), truncate(hotel.LocationLabel(), 30), price)
	if selected {
		return s.Selection.Render(line) + "\n"
	}
	return s.Text.Render(line) + "\n"
}

// listHeight is how many result rows fit under the header and footer.
func (m Model) listHeight() int {
	h := m.height - headerHeight - 6
	if h < 3 {
		h = 3
	}
	return h
}

// visibleWindow keeps the cursor inside the rendered slice of a long list.
func visibleWindow(total, cursor, height int) (visible, offset int) {
	if total <= height {
		return total, 0
	}
	offset = cursor - height/2
	if offset < 0 {
		offset = 0
	}
	if offset+height > total {
		offset = total - height
	}
	return height, offset
}
