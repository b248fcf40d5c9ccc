// Package config handles loading and parsing the Hearth configuration file.
//
// # Overview
//
// The client needs exactly three settings: where the family history API
// lives, where to keep the local cache, and where to write the log file.
// Everything has a sensible default, so Hearth works with no config file at
// all.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/hearth/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. The HEARTH_API_URL environment variable, when set, overrides the API
//     URL from any of the above
//
// # Default Values
//
//   - Config file: ~/.config/hearth/config.toml
//   - API URL: the fixed production endpoint
//   - Cache directory: ~/.local/share/hearth/cache
//   - Log file: ~/.local/share/hearth/hearth.log
//
// # TOML Format
//
// Example config.toml:
//
//	api_url = "http://localhost:8000/api"
//	cache_dir = "~/.local/share/hearth/cache"
//	log_path = "~/.local/share/hearth/hearth.log"
//
// All fields are optional. Tilde expansion is performed automatically for
// paths.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. A
// missing config file is NOT an error.
package config
