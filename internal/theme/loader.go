package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background    string `toml:"background"`
		NormalText    string `toml:"normal_text"`
		DirText       string `toml:"dir_text"`
		CursorRow     string `toml:"cursor_row"`
		SelectedItem  string `toml:"selected_item"`
		CollapsedMark string `toml:"collapsed_mark"`
		ExpandedMark  string `toml:"expanded_mark"`
		PromptLabel   string `toml:"prompt_label"`
		PromptText    string `toml:"prompt_text"`
		MatchText     string `toml:"match_text"`
		StatusMessage string `toml:"status_message"`
		StatusError   string `toml:"status_error"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "treelist", "themes"))
		paths = append(paths, filepath.Join(home, ".local", "share", "treelist", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	// Start with Tokyo Night as base
	t := TokyoNight()

	overrides := []struct {
		value string
		dst   *tcell.Color
	}{
		{config.Colors.Background, &t.Colors.Background},
		{config.Colors.NormalText, &t.Colors.NormalText},
		{config.Colors.DirText, &t.Colors.DirText},
		{config.Colors.CursorRow, &t.Colors.CursorRow},
		{config.Colors.SelectedItem, &t.Colors.SelectedItem},
		{config.Colors.CollapsedMark, &t.Colors.CollapsedMark},
		{config.Colors.ExpandedMark, &t.Colors.ExpandedMark},
		{config.Colors.PromptLabel, &t.Colors.PromptLabel},
		{config.Colors.PromptText, &t.Colors.PromptText},
		{config.Colors.MatchText, &t.Colors.MatchText},
		{config.Colors.StatusMessage, &t.Colors.StatusMessage},
		{config.Colors.StatusError, &t.Colors.StatusError},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = ParseColor(o.value)
		}
	}

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	if themeName == "default" {
		return Default()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		// Fall back to Tokyo Night
		return TokyoNight()
	}

	return theme
}
