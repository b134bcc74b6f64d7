// Package config locates and parses Voyago's configuration.
//
// The config lives at ~/.config/voyago/config.toml and can be overridden
// with the -config flag. A missing file is not an error: every field has
// a usable default, so a fresh install runs against a local API without
// any setup. Only genuinely broken input (unreadable file, invalid TOML)
// fails the load.
//
// Fields:
//
//	api_base  base address of the pricing API (host:port or full URL)
package config
