package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults drifted from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
game:
  mode: time
  start_level: 3
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Game.Mode != "time" || cfg.Game.StartLevel != 3 || cfg.Log.Level != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Keys absent from the file keep defaults
	if cfg.Game.TimeLimitSecs != 120 || cfg.Storage.Path != "~/.sumstack/scores.db" || !cfg.UI.ShowHelp {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "game: [", "failed to parse"},
		{"bad mode", "game:\n  mode: zen\n", "unknown mode"},
		{"bad difficulty", "game:\n  difficulty: insane\n", "unknown difficulty"},
		{"bad log level", "log:\n  level: loud\n", "unknown log level"},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			writeFile(t, path, tc.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("case %d: Load() error = %v, expected %q", i, err, tc.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != SourceEmbedded {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}

	userPath := filepath.Join(home, ".sumstack", "config.yaml")
	writeFile(t, userPath, "game:\n  start_level: 6\n")

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != userPath || cfg.Game.StartLevel != 6 {
		t.Errorf("user config not used: source=%q level=%d", cfg.Source, cfg.Game.StartLevel)
	}

	// A malformed user file is skipped
	writeFile(t, userPath, "game: [")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != SourceEmbedded {
		t.Errorf("Source = %q, expected fallback to embedded", cfg.Source)
	}
}

func TestEffectiveStartLevel(t *testing.T) {
	tests := []struct {
		name string
		game GameConfig
		want int
	}{
		{"plain", GameConfig{StartLevel: 5}, 5},
		{"clamped low", GameConfig{StartLevel: 0}, 1},
		{"clamped high", GameConfig{StartLevel: 99}, 10},
		{"easy preset", GameConfig{StartLevel: 9, Difficulty: DifficultyEasy}, 1},
		{"normal preset", GameConfig{StartLevel: 9, Difficulty: DifficultyNormal}, 4},
		{"hard preset", GameConfig{StartLevel: 1, Difficulty: DifficultyHard}, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.game.EffectiveStartLevel(); got != tc.want {
				t.Errorf("EffectiveStartLevel() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, in := range []string{"", "easy", " Normal ", "HARD"} {
		if _, err := ParseDifficulty(in); err != nil {
			t.Errorf("ParseDifficulty(%q) error: %v", in, err)
		}
	}
	if _, err := ParseDifficulty("fixed"); err == nil {
		t.Error("ParseDifficulty(fixed) should fail")
	}
}

func TestTimeLimit(t *testing.T) {
	if got := (GameConfig{TimeLimitSecs: 45}).TimeLimit(); got != 45*time.Second {
		t.Errorf("TimeLimit() = %v", got)
	}
	if got := (GameConfig{}).TimeLimit(); got != 120*time.Second {
		t.Errorf("TimeLimit() default = %v", got)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.sumstack/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".sumstack", "scores.db") {
		t.Errorf("ExpandPath() = %q", got)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
