// Package search implements the search-form state machine.
//
// # Overview
//
// The form owns everything the user edits before a search: location text,
// the pinned autocomplete selection, the stay date range, the room list,
// transient panel visibility, and validation state. It is a pure state
// machine; the UI layer schedules debounce timers and network calls around
// it and feeds the results back in.
//
// # Debounce and ordering
//
// Every keystroke bumps a query sequence number. The UI starts a 500ms
// timer keyed by that sequence; when the timer fires, DebounceReady only
// accepts the latest sequence, so keystroke bursts collapse into one call.
// ApplySuggestions applies the same rule to responses: a result for a
// superseded sequence is discarded, which makes out-of-order resolution
// harmless. Picking a suggestion also bumps the sequence, invalidating any
// in-flight lookup for the old text.
//
// # Validation
//
// Submit checks, in order and short-circuiting: a location is chosen or
// typed, check-in is not in the past, check-out is after check-in, and the
// stay is at most 30 nights. A failure sets a message that the UI expires
// after five seconds through ExpireError; messages never reach the network
// layer. On success the form emits a normalized Request and refuses
// duplicate submissions until FinishSubmit.
package search
