package config

import (
	"log"

	dark "github.com/thiagokokada/dark-mode-go"
)

// DarkMode resolves the configured theme to a dark/light flag. For "system"
// it asks detect; if detection fails the dark theme is used.
func (c Config) DarkMode(detect func() (bool, error)) bool {
	switch c.Theme {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	}
	isDark, err := detect()
	if err != nil {
		log.Printf("system theme detection failed, using dark: %v", err)
		return true
	}
	return isDark
}

// SystemDarkMode queries the desktop's color scheme preference.
func SystemDarkMode() (bool, error) {
	return dark.IsDarkMode()
}
