// Package config provides configuration loading for gitpro.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the gitpro global configuration directory.
//
// Resolution:
//   - $GITPRO_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/gitpro if set (respects XDG on any platform)
//   - %AppData%/gitpro on Windows
//   - ~/.config/gitpro on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("GITPRO_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitpro")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitpro")
		}
	}

	// macOS and Linux: ~/.config/gitpro
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gitpro")
}
