package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg ArenaConfig
	if err := yaml.Unmarshal(defaultArenaYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}

	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		t.Errorf("World dimensions not set: %+v", cfg.World)
	}
	if cfg.Player.Health <= 0 {
		t.Errorf("Player health not set: %+v", cfg.Player)
	}
	if len(cfg.Archetypes) != 8 {
		t.Errorf("Expected 8 archetype entries, got %d", len(cfg.Archetypes))
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML ArenaConfig
	if err := yaml.Unmarshal(defaultArenaYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}

	hard := DefaultArenaConfig()
	if fromYAML.World != hard.World {
		t.Errorf("World mismatch: yaml=%+v hardcoded=%+v", fromYAML.World, hard.World)
	}
	if fromYAML.Player != hard.Player {
		t.Errorf("Player mismatch: yaml=%+v hardcoded=%+v", fromYAML.Player, hard.Player)
	}
	if fromYAML.Enemy != hard.Enemy {
		t.Errorf("Enemy mismatch: yaml=%+v hardcoded=%+v", fromYAML.Enemy, hard.Enemy)
	}
	for name, mods := range hard.Archetypes {
		if fromYAML.Archetypes[name] != mods {
			t.Errorf("Archetype %q mismatch: yaml=%+v hardcoded=%+v", name, fromYAML.Archetypes[name], mods)
		}
	}
}

func TestLoadArenaCustomPath(t *testing.T) {
	custom := `
world:
  width: 400
  height: 300
player:
  health: 42
`
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadArena(path)
	if err != nil {
		t.Fatalf("LoadArena() failed: %v", err)
	}
	if cfg.World.Width != 400 || cfg.World.Height != 300 {
		t.Errorf("Custom world dimensions not applied: %+v", cfg.World)
	}
	if cfg.Player.Health != 42 {
		t.Errorf("Custom player health not applied: %v", cfg.Player.Health)
	}
}

func TestLoadArenaMissingCustomPath(t *testing.T) {
	_, err := LoadArena(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Expected error for missing custom config path")
	}
}

func TestApplyArenaPreset(t *testing.T) {
	tests := []struct {
		preset         DifficultyPreset
		wantInitial    int
		wantEscalation bool
	}{
		{DifficultyEasy, 0, true},
		{DifficultyNormal, 2, true},
		{DifficultyHard, 5, true},
	}

	for _, tt := range tests {
		cfg := DefaultArenaConfig()
		ApplyArenaPreset(&cfg, tt.preset)
		if cfg.Difficulty.Initial != tt.wantInitial {
			t.Errorf("%s: initial = %d, want %d", tt.preset, cfg.Difficulty.Initial, tt.wantInitial)
		}
		if cfg.Difficulty.Escalation != tt.wantEscalation {
			t.Errorf("%s: escalation = %v, want %v", tt.preset, cfg.Difficulty.Escalation, tt.wantEscalation)
		}
	}
}

func TestFixedPresetDisablesEscalation(t *testing.T) {
	cfg := DefaultArenaConfig()
	cfg.Difficulty.Initial = 3

	ApplyArenaPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Escalation {
		t.Error("Fixed preset should disable escalation")
	}
	if cfg.Difficulty.Initial != 3 {
		t.Errorf("Fixed preset should keep initial difficulty, got %d", cfg.Difficulty.Initial)
	}
}
