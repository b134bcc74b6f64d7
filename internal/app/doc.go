// Package app wires the Voyago application together.
//
// Run loads configuration and preferences, builds the API client, starts
// the background health poller, fetches the nationality and currency
// reference lists in parallel (joined before the UI starts, so the UI
// never renders with partial reference data), and hands everything to the
// Bubble Tea program in internal/ui.
//
// The poller is the only background goroutine: it pings /health on a
// fixed cadence, backing off exponentially while the API is unreachable,
// and records each outcome in the shared state.Store the UI header reads.
package app
