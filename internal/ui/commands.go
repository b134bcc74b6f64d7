package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voyago/voyago/internal/santsg"
	"github.com/voyago/voyago/internal/state"
)

// Messages delivered back into Update by commands.

type tickMsg time.Time

type healthMsg state.Snapshot

// debounceMsg fires when the autocomplete quiet period for seq elapses.
type debounceMsg struct {
	seq int
}

type suggestionsMsg struct {
	seq   int
	items []santsg.LocationSuggestion
	err   error
}

type searchResultsMsg struct {
	hotels []santsg.Hotel
	err    error
}

type detailMsg struct {
	hotel *santsg.Hotel
	err   error
}

// formErrorExpireMsg dismisses the validation message identified by seq.
type formErrorExpireMsg struct {
	seq int
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func healthSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return healthMsg(store.Snapshot())
	}
}

func debounceCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func autocompleteCmd(ctx context.Context, client *santsg.Client, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := client.AutocompleteLocations(ctx, query)
		return suggestionsMsg{seq: seq, items: items, err: err}
	}
}

func searchCmd(ctx context.Context, client *santsg.Client, payload santsg.PriceSearchRequest, byHotel bool) tea.Cmd {
	return func() tea.Msg {
		var (
			hotels []santsg.Hotel
			err    error
		)
		if byHotel {
			hotels, err = client.SearchByHotel(ctx, payload)
		} else {
			hotels, err = client.SearchByLocation(ctx, payload)
		}
		return searchResultsMsg{hotels: hotels, err: err}
	}
}

func detailCmd(ctx context.Context, client *santsg.Client, productID string) tea.Cmd {
	return func() tea.Msg {
		hotel, err := client.FetchProductInfo(ctx, productID)
		return detailMsg{hotel: hotel, err: err}
	}
}

func expireFormErrorCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return formErrorExpireMsg{seq: seq}
	})
}
