// Package app provides the orchestration layer for the Hearth application.
//
// # Overview
//
// This package wires together configuration, the API client, the local
// cache, the resource store, and the UI. It serves as the composition root
// where all dependencies are initialized and connected.
//
// # Startup sequence
//
//	Run()
//	 ├── config.Load()     read ~/.config/hearth/config.toml + env override
//	 ├── prefs.Load()      read user preferences (graceful degradation)
//	 ├── api.NewClient()   single-attempt HTTP client for the REST API
//	 ├── cache.New()       local JSON slot store, doubles as persistence sink
//	 ├── state.New()       in-memory resource store wired to the sink
//	 ├── Bootstrap()       cache seed + five concurrent remote refreshes
//	 └── ui.Run()          start the TUI (blocks until exit)
//
// Bootstrap deliberately blocks the UI start until every fetch attempt has
// settled, success or failure. A failed fetch leaves the cached data visible
// and records an error on its collection; it never cancels the other
// fetches. Nothing here retries and nothing imposes a timeout: a hung fetch
// hangs bootstrap for that resource, which is an accepted limitation of the
// single-user deployment this client targets.
//
// # Logging
//
// Logs are structured JSON written to the configured log file, never to the
// terminal, which the TUI owns. When the log file cannot be opened the
// logger degrades to discard rather than failing startup.
package app
