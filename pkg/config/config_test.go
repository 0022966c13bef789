package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Config file not created: %v", err)
	}
	if cfg.Server.MaxLimit != 100 || cfg.Server.MaxWordLen != 255 {
		t.Errorf("Unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Spell.MaxDistance != 2 {
		t.Errorf("Unexpected spell defaults: %+v", cfg.Spell)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *reloaded != *cfg {
		t.Errorf("Round trip changed config: %+v vs %+v", reloaded, cfg)
	}
}

func TestLoadConfigRecoversBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
max_limit = "lots"

[spell]
max_distance = 3

[cli]
default_no_filter = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	// The unparsable max_limit falls back to its default; valid sections
	// still apply.
	if cfg.Server.MaxLimit != 100 {
		t.Errorf("MaxLimit = %d, want default 100", cfg.Server.MaxLimit)
	}
	if cfg.Spell.MaxDistance != 3 {
		t.Errorf("MaxDistance = %d, want 3", cfg.Spell.MaxDistance)
	}
	if !cfg.CLI.DefaultNoFilter {
		t.Error("DefaultNoFilter not applied")
	}
}

func TestUpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	newLimit := 5
	if err := cfg.Update(path, &newLimit, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if reloaded.Server.MaxLimit != 5 {
		t.Errorf("MaxLimit = %d, want 5", reloaded.Server.MaxLimit)
	}
	if reloaded.Server.MaxWordLen != 255 {
		t.Errorf("MaxWordLen = %d, want untouched default 255", reloaded.Server.MaxWordLen)
	}
}
