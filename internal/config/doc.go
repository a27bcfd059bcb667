// Package config provides user configuration management for the slidecraft tools.
//
// This package manages a YAML-based settings file shared by the configuration
// builder and the backend server: the backend URL the builder talks to, the
// generator command the server runs, and browsing/output defaults. The file
// follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/slidecraft/config.yaml or $HOME/.config/slidecraft/config.yaml
//   - macOS: $HOME/.config/slidecraft/config.yaml
//   - Windows: %LOCALAPPDATA%\slidecraft\config.yaml
//
// # Usage Example
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings.BackendURL = "http://localhost:5000"
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global settings instance uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic writes.
package config
