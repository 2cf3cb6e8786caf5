package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
)

// Page jump policies. "classic" reproduces the historical deltas of
// height-1 lines on page-down but height+2 on page-up; "overlap"
// uses height-1 in both directions.
const (
	PageJumpClassic = "classic"
	PageJumpOverlap = "overlap"
)

type Config struct {
	TabSize    int    `json:"tab_size"`
	Theme      string `json:"theme"`
	IdlePollMs int    `json:"idle_poll_ms"`
	PageJump   string `json:"page_jump"`
}

type ColorScheme struct {
	Name            string
	Background      tcell.Color
	Foreground      tcell.Color
	StatusBarBg     tcell.Color
	StatusBarFg     tcell.Color
	StatusBarModeBg tcell.Color
}

var Themes = map[string]*ColorScheme{
	"dark": {
		Name:            "Dark",
		Background:      tcell.ColorBlack,
		Foreground:      tcell.ColorWhite,
		StatusBarBg:     tcell.ColorDarkBlue,
		StatusBarFg:     tcell.ColorWhite,
		StatusBarModeBg: tcell.ColorBlue,
	},
	"light": {
		Name:            "Light",
		Background:      tcell.ColorWhite,
		Foreground:      tcell.ColorBlack,
		StatusBarBg:     tcell.ColorLightBlue,
		StatusBarFg:     tcell.ColorBlack,
		StatusBarModeBg: tcell.ColorBlue,
	},
	"monokai": {
		Name:            "Monokai",
		Background:      tcell.NewRGBColor(39, 40, 34),
		Foreground:      tcell.NewRGBColor(248, 248, 242),
		StatusBarBg:     tcell.NewRGBColor(73, 72, 62),
		StatusBarFg:     tcell.NewRGBColor(248, 248, 242),
		StatusBarModeBg: tcell.NewRGBColor(102, 217, 239),
	},
	"gruvbox": {
		Name:            "Gruvbox Dark",
		Background:      tcell.NewRGBColor(40, 40, 40),
		Foreground:      tcell.NewRGBColor(235, 219, 178),
		StatusBarBg:     tcell.NewRGBColor(60, 56, 54),
		StatusBarFg:     tcell.NewRGBColor(235, 219, 178),
		StatusBarModeBg: tcell.NewRGBColor(184, 187, 38),
	},
}

func Default() *Config {
	return &Config{
		TabSize:    4,
		Theme:      "monokai",
		IdlePollMs: 500,
		PageJump:   PageJumpClassic,
	}
}

func (c *Config) GetTheme() *ColorScheme {
	theme, ok := Themes[c.Theme]
	if !ok {
		return Themes["monokai"]
	}
	return theme
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ked", "settings.json")
}

func Load() (*Config, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.PageJump != PageJumpOverlap {
		cfg.PageJump = PageJumpClassic
	}
	if cfg.TabSize < 1 {
		cfg.TabSize = 1
	}
	if cfg.IdlePollMs < 50 {
		cfg.IdlePollMs = 50
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
