// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML configuration at ~/.autodata/config.toml
//   - Watch: fsnotify-driven reload of a ConfigStore
package file
