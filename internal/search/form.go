package search

import (
	"strings"
	"time"

	"github.com/voyago/voyago/internal/santsg"
)

const (
	// DebounceInterval is how long the location input must stay quiet
	// before an autocomplete call fires.
	DebounceInterval = 500 * time.Millisecond

	// ErrorDisplayTime is how long a validation message stays visible.
	ErrorDisplayTime = 5 * time.Second

	maxRooms    = 5
	minAdults   = 1
	maxAdults   = 6
	minChildren = 0
	maxChildren = 4

	maxStayNights = 30

	// The API wants an explicit age per child; the form collects only a
	// count, so ages are synthesized with a fixed filler.
	fillerChildAge = 7

	dateLayout = "2006-01-02"
)

// Room is one room's occupancy as edited in the form.
type Room struct {
	Adults   int
	Children int
}

// Request is the normalized search the form hands to the controller.
// LocationID is empty when the user typed free text without picking a
// suggestion; LocationType then defaults to city.
type Request struct {
	Location     string
	LocationType int
	LocationID   string
	CheckIn      string // YYYY-MM-DD
	CheckOut     string // YYYY-MM-DD
	RoomCriteria []santsg.RoomCriterion
}

// Form owns the search form's input and validation state. It performs no
// I/O; the UI schedules debounce timers and network calls around it and
// feeds results back in.
type Form struct {
	query    string
	selected *santsg.LocationSuggestion

	checkIn  time.Time
	checkOut time.Time

	rooms []Room

	querySeq    int
	suggestions []santsg.LocationSuggestion

	suggestionsOpen bool
	calendarOpen    bool
	roomsOpen       bool

	errMsg string
	errSeq int

	submitting bool
}

// New returns a form with one default room and a one-night stay starting
// today.
func New(today time.Time) *Form {
	day := truncateDay(today)
	return &Form{
		checkIn:  day,
		checkOut: day.AddDate(0, 0, 1),
		rooms:    []Room{{Adults: 2, Children: 0}},
	}
}

// SetQuery records a keystroke in the location field. It bumps the query
// sequence so earlier debounce timers and in-flight autocomplete responses
// become stale, and unpins the selected location once the text diverges
// from it. The returned sequence keys the caller's debounce timer.
func (f *Form) SetQuery(text string) int {
	if text == f.query {
		return f.querySeq
	}
	f.query = text
	f.querySeq++
	if f.selected != nil && text != f.selected.Name {
		f.selected = nil
	}
	if strings.TrimSpace(text) == "" {
		f.suggestions = nil
		f.suggestionsOpen = false
	}
	return f.querySeq
}

// Query returns the current location text.
func (f *Form) Query() string { return f.query }

// QuerySeq returns the latest query sequence.
func (f *Form) QuerySeq() int { return f.querySeq }

// DebounceReady reports whether a fired debounce timer for seq should
// still trigger an autocomplete call, and with which query.
func (f *Form) DebounceReady(seq int) (string, bool) {
	if seq != f.querySeq {
		return "", false
	}
	trimmed := strings.TrimSpace(f.query)
	if len([]rune(trimmed)) < 2 {
		return "", false
	}
	return trimmed, true
}

// ApplySuggestions installs autocomplete results for seq. Results for a
// superseded sequence are discarded so an out-of-order resolution can
// never overwrite newer state.
func (f *Form) ApplySuggestions(seq int, items []santsg.LocationSuggestion) bool {
	if seq != f.querySeq {
		return false
	}
	f.suggestions = items
	f.suggestionsOpen = len(items) > 0
	return true
}

// Suggestions returns the currently visible suggestions.
func (f *Form) Suggestions() []santsg.LocationSuggestion { return f.suggestions }

// Choose pins suggestion i, mirrors its name into the text field, and
// closes the dropdown. The sequence bump invalidates any in-flight
// autocomplete for the old text.
func (f *Form) Choose(i int) bool {
	if i < 0 || i >= len(f.suggestions) {
		return false
	}
	chosen := f.suggestions[i]
	f.selected = &chosen
	f.query = chosen.Name
	f.querySeq++
	f.suggestions = nil
	f.suggestionsOpen = false
	return true
}

// Selected returns the pinned location, nil in free-text mode.
func (f *Form) Selected() *santsg.LocationSuggestion { return f.selected }

// SetDates replaces the stay range. Zero values leave the respective date
// untouched.
func (f *Form) SetDates(checkIn, checkOut time.Time) {
	if !checkIn.IsZero() {
		f.checkIn = truncateDay(checkIn)
	}
	if !checkOut.IsZero() {
		f.checkOut = truncateDay(checkOut)
	}
}

// CheckIn returns the stay start date.
func (f *Form) CheckIn() time.Time { return f.checkIn }

// CheckOut returns the stay end date.
func (f *Form) CheckOut() time.Time { return f.checkOut }

// StayNights returns the stay length in nights.
func (f *Form) StayNights() int {
	return int(f.checkOut.Sub(f.checkIn) / (24 * time.Hour))
}

// Rooms returns a copy of the room list.
func (f *Form) Rooms() []Room {
	dup := make([]Room, len(f.rooms))
	copy(dup, f.rooms)
	return dup
}

// TotalGuests sums adults and children across all rooms.
func (f *Form) TotalGuests() int {
	total := 0
	for _, room := range f.rooms {
		total += room.Adults + room.Children
	}
	return total
}

// AddRoom appends a default room, capped at five rooms.
func (f *Form) AddRoom() {
	if len(f.rooms) >= maxRooms {
		return
	}
	f.rooms = append(f.rooms, Room{Adults: 2, Children: 0})
}

// RemoveRoom deletes room i; the last remaining room cannot be removed.
func (f *Form) RemoveRoom(i int) {
	if len(f.rooms) <= 1 || i < 0 || i >= len(f.rooms) {
		return
	}
	f.rooms = append(f.rooms[:i], f.rooms[i+1:]...)
}

// AdjustAdults changes room i's adult count by delta, clamped to [1,6].
func (f *Form) AdjustAdults(i, delta int) {
	if i < 0 || i >= len(f.rooms) {
		return
	}
	f.rooms[i].Adults = clamp(f.rooms[i].Adults+delta, minAdults, maxAdults)
}

// AdjustChildren changes room i's child count by delta, clamped to [0,4].
func (f *Form) AdjustChildren(i, delta int) {
	if i < 0 || i >= len(f.rooms) {
		return
	}
	f.rooms[i].Children = clamp(f.rooms[i].Children+delta, minChildren, maxChildren)
}

// Panel toggles. Opening one panel closes the others; in practice the user
// only ever interacts with one at a time.

// ToggleSuggestions opens or closes the suggestion dropdown.
func (f *Form) ToggleSuggestions() {
	open := !f.suggestionsOpen
	f.CloseAllPanels()
	f.suggestionsOpen = open && len(f.suggestions) > 0
}

// ToggleCalendar opens or closes the date panel.
func (f *Form) ToggleCalendar() {
	open := !f.calendarOpen
	f.CloseAllPanels()
	f.calendarOpen = open
}

// ToggleRooms opens or closes the occupancy panel.
func (f *Form) ToggleRooms() {
	open := !f.roomsOpen
	f.CloseAllPanels()
	f.roomsOpen = open
}

// CloseAllPanels closes every transient panel (Escape, focus leaving).
func (f *Form) CloseAllPanels() {
	f.suggestionsOpen = false
	f.calendarOpen = false
	f.roomsOpen = false
}

// SuggestionsOpen reports whether the dropdown is visible.
func (f *Form) SuggestionsOpen() bool { return f.suggestionsOpen }

// CalendarOpen reports whether the date panel is visible.
func (f *Form) CalendarOpen() bool { return f.calendarOpen }

// RoomsOpen reports whether the occupancy panel is visible.
func (f *Form) RoomsOpen() bool { return f.roomsOpen }

// Error returns the current transient validation message.
func (f *Form) Error() string { return f.errMsg }

// ErrorSeq keys the auto-dismiss timer for the current message.
func (f *Form) ErrorSeq() int { return f.errSeq }

// ExpireError clears the message if seq still refers to it. A newer
// message keeps its own timer.
func (f *Form) ExpireError(seq int) {
	if seq == f.errSeq {
		f.errMsg = ""
	}
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool { return f.submitting }

// FinishSubmit clears the in-flight flag once the controller is done.
func (f *Form) FinishSubmit() { f.submitting = false }

// Submit validates the form and, on success, returns the normalized
// request and marks the form as submitting. Validation short-circuits on
// the first failure; the message auto-dismisses via ExpireError. A second
// Submit while one is in flight is ignored.
func (f *Form) Submit(today time.Time) (Request, bool) {
	if f.submitting {
		return Request{}, false
	}

	if f.selected == nil && strings.TrimSpace(f.query) == "" {
		return f.fail("Please choose a destination or type a hotel name.")
	}
	if f.checkIn.Before(truncateDay(today)) {
		return f.fail("Check-in cannot be in the past.")
	}
	if !f.checkOut.After(f.checkIn) {
		return f.fail("Check-out must be after check-in.")
	}
	if f.StayNights() > maxStayNights {
		return f.fail("Stays longer than 30 nights are not supported.")
	}

	req := Request{
		Location:     strings.TrimSpace(f.query),
		LocationType: santsg.LocationTypeCity,
		CheckIn:      f.checkIn.Format(dateLayout),
		CheckOut:     f.checkOut.Format(dateLayout),
		RoomCriteria: f.roomCriteria(),
	}
	if f.selected != nil {
		req.Location = f.selected.Name
		req.LocationType = f.selected.Type
		req.LocationID = f.selected.ID
	}

	f.errMsg = ""
	f.submitting = true
	f.CloseAllPanels()
	return req, true
}

// ReportError installs a transient message from the caller's own
// validation (an unparseable date, for example) and returns the sequence
// keying its dismissal timer.
func (f *Form) ReportError(msg string) int {
	f.errMsg = msg
	f.errSeq++
	return f.errSeq
}

func (f *Form) fail(msg string) (Request, bool) {
	f.errMsg = msg
	f.errSeq++
	return Request{}, false
}

func (f *Form) roomCriteria() []santsg.RoomCriterion {
	criteria := make([]santsg.RoomCriterion, len(f.rooms))
	for i, room := range f.rooms {
		ages := make([]int, room.Children)
		for j := range ages {
			ages[j] = fillerChildAge
		}
		criteria[i] = santsg.RoomCriterion{
			Adults:    room.Adults,
			Children:  room.Children,
			ChildAges: ages,
		}
	}
	return criteria
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
