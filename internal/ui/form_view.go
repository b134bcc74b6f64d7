package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voyago/voyago/internal/search"
)

// popularDestinations seeds the search view with one-keystroke starting
// points, mirroring the landing page of the web client.
var popularDestinations = []string{"Antalya", "Istanbul", "Bodrum", "Cappadocia"}

// handleSearchKey routes input on the search view. The location field owns
// the suggestion dropdown; the rooms field owns the occupancy panel; the
// nationality and currency fields own the header dropdowns.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matches(msg, m.keys.Escape):
		if m.natOpen || m.curOpen {
			m.closeHeaderDropdowns()
			return m, nil
		}
		if m.form.SuggestionsOpen() || m.form.RoomsOpen() || m.form.CalendarOpen() {
			m.form.CloseAllPanels()
			return m, nil
		}
		return m, nil

	case matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case matches(msg, m.keys.PrevField):
		m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
		return m, nil
	}

	switch m.focus {
	case fieldLocation:
		return m.handleLocationKey(msg)
	case fieldCheckIn, fieldCheckOut:
		return m.handleDateKey(msg)
	case fieldRooms:
		return m.handleRoomsKey(msg)
	case fieldNationality:
		return m.handleNationalityKey(msg)
	case fieldCurrency:
		return m.handleCurrencyKey(msg)
	}
	return m, nil
}

func (m Model) handleLocationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.SuggestionsOpen() {
		// Plain letters keep going to the input, so only the arrow keys
		// move the dropdown cursor here.
		switch {
		case msg.String() == "up":
			if m.suggestionCursor > 0 {
				m.suggestionCursor--
			}
			return m, nil
		case msg.String() == "down":
			if m.suggestionCursor < len(m.form.Suggestions())-1 {
				m.suggestionCursor++
			}
			return m, nil
		case matches(msg, m.keys.Confirm):
			if m.form.Choose(m.suggestionCursor) {
				m.locationInput.SetValue(m.form.Query())
				m.locationInput.CursorEnd()
				m.suggestionCursor = 0
			}
			return m, nil
		}
	} else if matches(msg, m.keys.Confirm) {
		return m.submitSearch()
	}

	var cmd tea.Cmd
	before := m.locationInput.Value()
	m.locationInput, cmd = m.locationInput.Update(msg)
	after := m.locationInput.Value()
	if after != before {
		seq := m.form.SetQuery(after)
		return m, tea.Batch(cmd, debounceCmd(seq, search.DebounceInterval))
	}
	return m, cmd
}

func (m Model) handleDateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if matches(msg, m.keys.Confirm) {
		return m.submitSearch()
	}
	var cmd tea.Cmd
	if m.focus == fieldCheckIn {
		m.checkInInput, cmd = m.checkInInput.Update(msg)
	} else {
		m.checkOutInput, cmd = m.checkOutInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleRoomsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.form.RoomsOpen() {
		if matches(msg, m.keys.Confirm) {
			m.form.ToggleRooms()
			m.roomCursor = 0
		}
		return m, nil
	}

	switch {
	case matches(msg, m.keys.Up):
		if m.roomCursor > 0 {
			m.roomCursor--
		}
	case matches(msg, m.keys.Down):
		if m.roomCursor < len(m.form.Rooms())-1 {
			m.roomCursor++
		}
	case matches(msg, m.keys.AddRoom):
		m.form.AddRoom()
	case matches(msg, m.keys.RemoveRoom):
		m.form.RemoveRoom(m.roomCursor)
		if n := len(m.form.Rooms()); m.roomCursor >= n {
			m.roomCursor = n - 1
		}
	case matches(msg, m.keys.Confirm):
		m.form.CloseAllPanels()
	default:
		switch msg.String() {
		case "left", "h":
			m.form.AdjustAdults(m.roomCursor, -1)
		case "right", "l":
			m.form.AdjustAdults(m.roomCursor, +1)
		case "-", "_":
			m.form.AdjustChildren(m.roomCursor, -1)
		case "+", "=":
			m.form.AdjustChildren(m.roomCursor, +1)
		}
	}
	return m, nil
}

func (m Model) handleNationalityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nats := m.ctrl.Nationalities()
	if !m.natOpen {
		if matches(msg, m.keys.Confirm) && len(nats) > 0 {
			m.natOpen = true
			m.curOpen = false
			m.natCursor = indexOfNationality(nats, m.ctrl.Nationality())
		}
		return m, nil
	}
	switch {
	case matches(msg, m.keys.Up):
		if m.natCursor > 0 {
			m.natCursor--
		}
	case matches(msg, m.keys.Down):
		if m.natCursor < len(nats)-1 {
			m.natCursor++
		}
	case matches(msg, m.keys.Confirm):
		m.ctrl.SetNationality(nats[m.natCursor].ID)
		m.natOpen = false
		m.savePrefs()
	}
	return m, nil
}

func (m Model) handleCurrencyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	curs := m.ctrl.Currencies()
	if !m.curOpen {
		if matches(msg, m.keys.Confirm) && len(curs) > 0 {
			m.curOpen = true
			m.natOpen = false
			m.curCursor = indexOfCurrency(curs, m.ctrl.Currency())
		}
		return m, nil
	}
	switch {
	case matches(msg, m.keys.Up):
		if m.curCursor > 0 {
			m.curCursor--
		}
	case matches(msg, m.keys.Down):
		if m.curCursor < len(curs)-1 {
			m.curCursor++
		}
	case matches(msg, m.keys.Confirm):
		m.ctrl.SetCurrency(curs[m.curCursor].Code)
		m.curOpen = false
		m.savePrefs()
	}
	return m, nil
}

// submitSearch parses the date inputs, runs form validation, and on
// success dispatches the price search.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	checkIn, checkOut, err := parseDateInputs(m.checkInInput.Value(), m.checkOutInput.Value())
	if err != nil {
		seq := m.form.ReportError("Dates must be in YYYY-MM-DD form.")
		return m, expireFormErrorCmd(seq, search.ErrorDisplayTime)
	}
	m.form.SetDates(checkIn, checkOut)

	req, ok := m.form.Submit(time.Now())
	if !ok {
		if msg := m.form.Error(); msg != "" {
			return m, expireFormErrorCmd(m.form.ErrorSeq(), search.ErrorDisplayTime)
		}
		return m, nil
	}

	payload, byHotel, ok := m.ctrl.BeginSearch(req)
	if !ok {
		m.form.FinishSubmit()
		return m, nil
	}
	return m, searchCmd(m.ctx, m.client, payload, byHotel)
}

func parseDateInputs(checkIn, checkOut string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", strings.TrimSpace(checkIn))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse("2006-01-02", strings.TrimSpace(checkOut))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// setFocus moves keyboard focus and keeps the text inputs' focus state and
// the transient panels in sync.
func (m *Model) setFocus(f field) {
	m.focus = f
	m.form.CloseAllPanels()
	m.closeHeaderDropdowns()

	m.locationInput.Blur()
	m.checkInInput.Blur()
	m.checkOutInput.Blur()
	switch f {
	case fieldLocation:
		m.locationInput.Focus()
	case fieldCheckIn:
		m.checkInInput.Focus()
	case fieldCheckOut:
		m.checkOutInput.Focus()
	}
}

func (m Model) renderSearch() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(s.Header.Render("Find your next stay"))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(fieldLocation, "Where to", m.locationInput.View()))
	if m.form.SuggestionsOpen() {
		b.WriteString(m.renderSuggestions())
	}

	b.WriteString(m.renderField(fieldCheckIn, "Check-in", m.checkInInput.View()))
	b.WriteString(m.renderField(fieldCheckOut, "Check-out", m.checkOutInput.View()))

	roomsLabel := fmt.Sprintf("%d room(s), %d guest(s)", len(m.form.Rooms()), m.form.TotalGuests())
	b.WriteString(m.renderField(fieldRooms, "Guests", roomsLabel))
	if m.form.RoomsOpen() {
		b.WriteString(m.renderRoomsPanel())
	}

	b.WriteString(m.renderField(fieldNationality, "Nationality", m.ctrl.NationalityName()))
	if m.natOpen {
		b.WriteString(m.renderNationalityDropdown())
	}
	b.WriteString(m.renderField(fieldCurrency, "Currency", m.ctrl.CurrencyName()))
	if m.curOpen {
		b.WriteString(m.renderCurrencyDropdown())
	}

	b.WriteString("\n")
	if m.form.Submitting() {
		b.WriteString(m.spin.View() + s.MutedText.Render(" Searching..."))
	} else {
		b.WriteString(s.AccentText.Render("enter") + s.MutedText.Render(" search  ") +
			s.AccentText.Render("tab") + s.MutedText.Render(" next field  ") +
			s.AccentText.Render("f1") + s.MutedText.Render(" help"))
	}
	b.WriteString("\n")

	if errMsg := m.form.Error(); errMsg != "" {
		b.WriteString("\n" + s.DangerText.Render(errMsg) + "\n")
	}

	b.WriteString("\n" + s.FaintText.Render("Popular: "+strings.Join(popularDestinations, " · ")) + "\n")

	return b.String()
}

func (m Model) renderField(f field, label, value string) string {
	s := m.theme.Styles()
	marker := "  "
	labelStyle := s.MutedText
	if m.focus == f {
		marker = s.AccentText.Render("> ")
		labelStyle = s.AccentText
	}
	return fmt.Sprintf("%s%s  %s\n", marker, labelStyle.Render(padLabel(label)), value)
}

func (m Model) renderSuggestions() string {
	s := m.theme.Styles()
	var b strings.Builder
	for i, item := range m.form.Suggestions() {
		label := item.Name
		if item.Country != "" {
			label += ", " + item.Country
		}
		tag := "city"
		if item.IsHotel() {
			tag = "hotel"
		}
		line := fmt.Sprintf("%s  %s", label, s.FaintText.Render(tag))
		if i == m.suggestionCursor {
			line = s.Selection.Render(label + "  " + tag)
		}
		b.WriteString("      " + line + "\n")
	}
	return b.String()
}

func (m Model) renderRoomsPanel() string {
	s := m.theme.Styles()
	var b strings.Builder
	for i, room := range m.form.Rooms() {
		line := fmt.Sprintf("Room %d: %d adult(s), %d child(ren)", i+1, room.Adults, room.Children)
		if i == m.roomCursor {
			line = s.Selection.Render(line)
		}
		b.WriteString("      " + line + "\n")
	}
	b.WriteString("      " + s.FaintText.Render("←/→ adults  +/- children  n add  d remove") + "\n")
	return b.String()
}

func (m Model) renderNationalityDropdown() string {
	s := m.theme.Styles()
	var b strings.Builder
	for i, n := range m.ctrl.Nationalities() {
		line := n.Name
		if i == m.natCursor {
			line = s.Selection.Render(line)
		}
		b.WriteString("      " + line + "\n")
	}
	return b.String()
}

func (m Model) renderCurrencyDropdown() string {
	s := m.theme.Styles()
	var b strings.Builder
	for i, c := range m.ctrl.Currencies() {
		line := fmt.Sprintf("%s (%s)", c.Name, c.Code)
		if i == m.curCursor {
			line = s.Selection.Render(line)
		}
		b.WriteString("      " + line + "\n")
	}
	return b.String()
}
