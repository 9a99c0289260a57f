// Package config resolves the qareport configuration directory and loads
// user settings from it.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName is the directory name used under the platform config root.
const appName = "qareport"

// Dir returns the qareport configuration directory.
//
// Resolution:
//   - $QAREPORT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/qareport if set (respects XDG on any platform)
//   - %AppData%/qareport on Windows
//   - ~/.config/qareport on macOS and Linux
//
// Returns "" when no home directory can be determined.
func Dir() string {
	if dir := os.Getenv("QAREPORT_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
