package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.TabSize != 4 {
		t.Fatalf("expected tab size 4, got %d", cfg.TabSize)
	}
	if cfg.PageJump != PageJumpClassic {
		t.Fatalf("expected classic page jump, got %q", cfg.PageJump)
	}
	if cfg.IdlePollMs != 500 {
		t.Fatalf("expected 500ms idle poll, got %d", cfg.IdlePollMs)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults for missing config, got error %v", err)
	}
	if cfg.Theme != "monokai" {
		t.Fatalf("expected monokai theme, got %q", cfg.Theme)
	}
}

func TestLoadSanitizesValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "ked")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	raw := `{"tab_size": 0, "idle_poll_ms": 1, "page_jump": "bogus"}`
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.TabSize != 1 {
		t.Fatalf("expected tab size clamped to 1, got %d", cfg.TabSize)
	}
	if cfg.IdlePollMs != 50 {
		t.Fatalf("expected idle poll clamped to 50, got %d", cfg.IdlePollMs)
	}
	if cfg.PageJump != PageJumpClassic {
		t.Fatalf("expected unknown page jump to fall back to classic, got %q", cfg.PageJump)
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	cfg := Default()
	cfg.Theme = "no-such-theme"
	if got := cfg.GetTheme(); got != Themes["monokai"] {
		t.Fatalf("expected monokai fallback, got %v", got)
	}
}
