package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voyago/voyago/internal/controller"
	"github.com/voyago/voyago/internal/prefs"
	"github.com/voyago/voyago/internal/santsg"
	"github.com/voyago/voyago/internal/search"
	"github.com/voyago/voyago/internal/state"
)

// field identifies the focused element of the search form.
type field int

const (
	fieldLocation field = iota
	fieldCheckIn
	fieldCheckOut
	fieldRooms
	fieldNationality
	fieldCurrency
	fieldCount
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Client   *santsg.Client
	Store    *state.Store
	PollTick time.Duration

	Nationalities []santsg.Nationality
	Currencies    []santsg.Currency
	ReferenceErr  error

	PreferredNationality string
	PreferredCurrency    string

	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	client    *santsg.Client
	store     *state.Store
	prefsPath string
	pollTick  time.Duration

	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	ctrl *controller.Controller
	form *search.Form

	// Search form widgets
	focus         field
	locationInput textinput.Model
	checkInInput  textinput.Model
	checkOutInput textinput.Model

	suggestionCursor int
	roomCursor       int

	natOpen   bool
	natCursor int
	curOpen   bool
	curCursor int

	// Results / detail
	resultCursor   int
	detailViewport viewport.Model

	health   state.Snapshot
	spin     spinner.Model
	showHelp bool
}

// New creates the root Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = 15 * time.Second
	}

	theme := GetTheme(opts.ThemeName)

	ctrl := controller.New()
	ctrl.ApplyReferenceData(opts.Nationalities, opts.Currencies, opts.ReferenceErr)
	applyPreferredSelections(ctrl, opts.PreferredNationality, opts.PreferredCurrency)

	form := search.New(time.Now())

	location := textinput.New()
	location.Placeholder = "City or hotel name"
	location.CharLimit = 64
	location.Width = 32
	location.Focus()

	checkIn := textinput.New()
	checkIn.Placeholder = "YYYY-MM-DD"
	checkIn.CharLimit = 10
	checkIn.Width = 12
	checkIn.SetValue(form.CheckIn().Format("2006-01-02"))

	checkOut := textinput.New()
	checkOut.Placeholder = "YYYY-MM-DD"
	checkOut.CharLimit = 10
	checkOut.Width = 12
	checkOut.SetValue(form.CheckOut().Format("2006-01-02"))

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:           ctx,
		client:        opts.Client,
		store:         opts.Store,
		prefsPath:     prefsPath,
		pollTick:      pollTick,
		theme:         theme,
		keys:          defaultKeyMap(),
		ctrl:          ctrl,
		form:          form,
		locationInput: location,
		checkInInput:  checkIn,
		checkOutInput: checkOut,
		spin:          spin,
	}
}

func applyPreferredSelections(ctrl *controller.Controller, nationality, currency string) {
	if nationality != "" {
		for _, n := range ctrl.Nationalities() {
			if n.ID == nationality {
				ctrl.SetNationality(nationality)
				break
			}
		}
	}
	if currency != "" {
		for _, c := range ctrl.Currencies() {
			if c.Code == currency {
				ctrl.SetCurrency(currency)
				break
			}
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		textinput.Blink,
		m.spin.Tick,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, healthSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, max(1, msg.Height-headerHeight))
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = max(1, msg.Height-headerHeight)
		}
		m.ready = true
		m.refreshDetailContent()
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, healthSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case healthMsg:
		m.health = state.Snapshot(msg)
		return m, nil

	case debounceMsg:
		if query, ok := m.form.DebounceReady(msg.seq); ok {
			return m, autocompleteCmd(m.ctx, m.client, msg.seq, query)
		}
		return m, nil

	case suggestionsMsg:
		if msg.err == nil && m.form.ApplySuggestions(msg.seq, msg.items) {
			m.suggestionCursor = 0
		}
		// Autocomplete failures degrade silently; the user keeps typing.
		return m, nil

	case searchResultsMsg:
		m.form.FinishSubmit()
		m.ctrl.ApplySearchResults(msg.hotels, msg.err)
		m.resultCursor = 0
		return m, nil

	case detailMsg:
		m.ctrl.ApplyHotelDetail(msg.hotel, msg.err)
		m.refreshDetailContent()
		return m, nil

	case formErrorExpireMsg:
		m.form.ExpireError(msg.seq)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	// Anything else (cursor blink, mostly) flows to the focused input.
	var cmd tea.Cmd
	switch m.focus {
	case fieldLocation:
		m.locationInput, cmd = m.locationInput.Update(msg)
	case fieldCheckIn:
		m.checkInInput, cmd = m.checkInInput.Update(msg)
	case fieldCheckOut:
		m.checkOutInput, cmd = m.checkOutInput.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var body string
	switch {
	case m.ctrl.Fatal():
		body = m.renderFatal()
	case m.ctrl.Err() != "":
		body = m.renderGlobalError()
	case m.ctrl.Loading():
		body = m.renderLoading()
	default:
		switch m.ctrl.View() {
		case controller.ViewResults:
			body = m.renderResults()
		case controller.ViewDetail:
			body = m.renderDetail()
		default:
			body = m.renderSearch()
		}
	}

	return m.renderHeader() + "\n" + body
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if matches(msg, m.keys.Help) {
		m.showHelp = true
		return m, nil
	}
	if matches(msg, m.keys.CycleTheme) {
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.savePrefs()
		return m, nil
	}

	if m.ctrl.Fatal() {
		return m, nil
	}
	if m.ctrl.Err() != "" {
		return m.handleErrorKey(msg)
	}
	if m.ctrl.Loading() {
		return m, nil
	}
	if matches(msg, m.keys.Home) {
		m.goHome()
		return m, nil
	}

	switch m.ctrl.View() {
	case controller.ViewResults:
		return m.handleResultsKey(msg)
	case controller.ViewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleSearchKey(msg)
	}
}

// goHome returns to a clean search view (logo action in the original UI).
func (m *Model) goHome() {
	m.ctrl.BackToSearch()
	m.form.CloseAllPanels()
	m.closeHeaderDropdowns()
	m.setFocus(fieldLocation)
}

func (m *Model) closeHeaderDropdowns() {
	m.natOpen = false
	m.curOpen = false
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:       m.theme.Name,
		Nationality: m.ctrl.Nationality(),
		Currency:    m.ctrl.Currency(),
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
