// Package controller implements the application view controller.
//
// Top-level state (active view, results, selected hotel, loading, error)
// used to live as ambient mutable fields in the rendering layer; here it
// is an explicit state object transitioned only through named actions
// (BeginSearch, ApplySearchResults, SelectHotel, ApplyHotelDetail,
// BackToSearch, BackToResults), so every transition is testable without
// rendering. The controller performs no I/O: Begin* actions gate and
// assemble requests, the UI dispatches them, and Apply* actions consume
// the outcomes.
package controller
