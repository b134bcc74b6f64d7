package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voyago/voyago/internal/santsg"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if matches(msg, m.keys.Back) {
		m.ctrl.BackToResults()
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m Model) renderDetail() string {
	s := m.theme.Styles()
	hotel := m.ctrl.Selected()
	if hotel == nil {
		return s.MutedText.Render("No hotel selected.")
	}
	footer := s.AccentText.Render("↑/↓") + s.MutedText.Render(" scroll  ") +
		s.AccentText.Render("esc") + s.MutedText.Render(" back to results")
	return m.detailViewport.View() + "\n" + footer
}

// refreshDetailContent rebuilds the viewport content after a detail fetch
// or a resize.
func (m *Model) refreshDetailContent() {
	if !m.ready {
		return
	}
	hotel := m.ctrl.Selected()
	if hotel == nil {
		return
	}
	m.detailViewport.SetContent(m.buildDetailContent())
	m.detailViewport.GotoTop()
}

func (m Model) buildDetailContent() string {
	s := m.theme.Styles()
	hotel := m.ctrl.Selected()
	var b strings.Builder

	b.WriteString(s.Header.Render(hotel.Name))
	b.WriteString("\n")
	b.WriteString(s.WarningText.Render(starLabel(hotel.Stars)))
	b.WriteString("  " + s.MutedText.Render(hotel.LocationLabel()))
	b.WriteString("\n\n")

	if best, ok := hotel.BestPrice(); ok {
		stay := ""
		if last := m.ctrl.LastSearch(); last != nil {
			stay = fmt.Sprintf("  %s → %s", last.CheckIn, last.CheckOut)
		}
		b.WriteString(s.SuccessText.Render(formatPrice(best.Amount, best.Currency)) + s.FaintText.Render(stay))
		b.WriteString("\n\n")
	}

	season, hasSeason := hotel.PrimarySeason()
	if hasSeason && len(season.MediaFiles) > 0 {
		b.WriteString(s.FaintText.Render(fmt.Sprintf("%d photo(s) available", len(season.MediaFiles))))
		b.WriteString("\n\n")
	}

	if hasSeason {
		for _, cat := range season.TextCategories {
			body := presentationText(cat.Presentations)
			if body == "" {
				continue
			}
			if cat.Name != "" {
				b.WriteString(s.AccentText.Render(cat.Name))
				b.WriteString("\n")
			}
			b.WriteString(wrap(body, m.contentWidth()))
			b.WriteString("\n\n")
		}

		for _, cat := range season.FacilityCategories {
			if len(cat.Facilities) == 0 {
				continue
			}
			if cat.Name != "" {
				b.WriteString(s.AccentText.Render(cat.Name))
				b.WriteString("\n")
			}
			var names []string
			for _, fac := range cat.Facilities {
				if strings.TrimSpace(fac.Name) != "" {
					names = append(names, fac.Name)
				}
			}
			b.WriteString(wrap(strings.Join(names, " · "), m.contentWidth()))
			b.WriteString("\n\n")
		}
	}

	if !hasSeason && len(hotel.Amenities) > 0 {
		b.WriteString(s.AccentText.Render("Amenities"))
		b.WriteString("\n")
		b.WriteString(wrap(strings.Join(hotel.Amenities, " · "), m.contentWidth()))
		b.WriteString("\n")
	}

	return b.String()
}

// presentationText joins a category's presentation blocks into plain text,
// stripping any HTML markup the API embeds.
func presentationText(blocks []santsg.Presentation) string {
	var parts []string
	for _, p := range blocks {
		text := strings.TrimSpace(stripHTML(p.Text))
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}
