// Package state provides thread-safe connectivity state shared between
// the background health poller and the UI.
//
// The Store mediates between two independent flows: the poller writes the
// outcome of each /health check, the UI reads an immutable Snapshot when
// rendering its header. A single failure is tolerated silently; after two
// consecutive failures the snapshot reports offline and the UI shows a
// banner. A successful check resets the counter.
package state
