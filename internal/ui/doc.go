// Package ui implements the Voyago terminal interface with Bubble Tea.
//
// # Overview
//
// The UI is a single Bubble Tea program with three views: the search form,
// the result list, and the hotel detail page. Which view is active, and
// every transition between them, is owned by the controller package; the
// ui package renders that state and translates key presses into controller
// and form actions.
//
// # Architecture
//
// Model is the root tea.Model. All I/O happens in commands: autocomplete,
// price searches, and detail fetches run in tea.Cmd closures against the
// santsg client and come back as typed messages. Autocomplete responses
// and validation-message timers carry the sequence number they were
// scheduled under, so a stale timer or an out-of-order response is
// discarded instead of overwriting newer state.
//
// Theme switching is instant and persisted to the preferences file along
// with the selected nationality and currency.
package ui
