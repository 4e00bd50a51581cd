package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultClimbConfig()) {
		t.Errorf("embedded climb.yaml drifted from DefaultClimbConfig()")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultClimbConfig().Validate(); err != nil {
		t.Fatalf("DefaultClimbConfig().Validate() = %v", err)
	}
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	data := []byte("score:\n  continues: 5\nviewport:\n  height: 800\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Score.Continues != 5 {
		t.Errorf("Score.Continues = %d, expected 5", cfg.Score.Continues)
	}
	if cfg.Viewport.Height != 800 {
		t.Errorf("Viewport.Height = %v, expected 800", cfg.Viewport.Height)
	}
	if cfg.Viewport.Width != 400 {
		t.Errorf("Viewport.Width = %v, expected default 400", cfg.Viewport.Width)
	}
	if len(cfg.Ghosts.Bands) != 6 {
		t.Errorf("Ghosts.Bands should keep 6 defaults, got %d", len(cfg.Ghosts.Bands))
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.toml")
	data := []byte(`
[physics]
gravity = 0.5
thrust_duration_ms = 1500.0

[[ghosts.bands]]
min = 50
max = 1000
count = 4
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Physics.Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.ThrustDuration() != 1500*time.Millisecond {
		t.Errorf("ThrustDuration() = %v, expected 1.5s", cfg.Physics.ThrustDuration())
	}
	if len(cfg.Ghosts.Bands) != 1 || cfg.Ghosts.Bands[0].Count != 4 {
		t.Errorf("Ghosts.Bands = %+v, expected the single file band", cfg.Ghosts.Bands)
	}
	if cfg.Physics.JumpImpulse != -15 {
		t.Errorf("Physics.JumpImpulse = %v, expected default -15", cfg.Physics.JumpImpulse)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero viewport", "viewport:\n  width: 0\n"},
		{"zero spacing", "world:\n  spacing: 0\n"},
		{"negative continues", "score:\n  continues: -1\n"},
		{"unordered curve", "ghosts:\n  curve:\n    - {score: 100, p: 0.5}\n    - {score: 50, p: 0.4}\n"},
		{"empty band", "ghosts:\n  bands:\n    - {min: 10, max: 10, count: 1}\n"},
		{"no suffixes", "ghosts:\n  suffixes: []\n"},
		{"zero styles", "ghosts:\n  styles: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml), FormatYAML)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, DefaultClimbConfig(), format); err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			cfg, err := Parse(buf.Bytes(), format)
			if err != nil {
				t.Fatalf("Parse() of encoded config failed: %v", err)
			}
			if cfg.Ghosts.Cap != 100 || len(cfg.Shop.Skins) != 5 {
				t.Errorf("round trip lost data: cap=%d skins=%d", cfg.Ghosts.Cap, len(cfg.Shop.Skins))
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		continues int
		thrustMS  float64
		level     float64
	}{
		{"", 2, 3000, 0},
		{DifficultyEasy, 3, 4000, 0},
		{DifficultyNormal, 2, 3000, 0.3},
		{DifficultyHard, 1, 2000, 0.7},
		{DifficultyFixed, 2, 3000, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultClimbConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Score.Continues != tc.continues {
				t.Errorf("Continues = %d, expected %d", cfg.Score.Continues, tc.continues)
			}
			if cfg.Physics.ThrustDurationMS != tc.thrustMS {
				t.Errorf("ThrustDurationMS = %v, expected %v", cfg.Physics.ThrustDurationMS, tc.thrustMS)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultClimbConfig().Difficulty

	d := NewDifficultyManager(cfg)
	if d.IsEnabled() {
		t.Fatal("progression should be off by default")
	}
	if got := d.MovingSpeed(1, 10000); got != 1 {
		t.Errorf("disabled MovingSpeed() = %v, expected 1", got)
	}

	cfg.Enabled = true
	d = NewDifficultyManager(cfg)
	if got := d.Level(0); got != 0 {
		t.Errorf("Level(0) = %v, expected 0", got)
	}
	if got := d.Level(2500); got != 0.5 {
		t.Errorf("Level(2500) = %v, expected 0.5", got)
	}
	if got := d.Level(1 << 20); got != 1 {
		t.Errorf("Level(huge) = %v, expected 1", got)
	}
	if got := d.MovingSpeed(1, 5000); got != 2 {
		t.Errorf("MovingSpeed(1, 5000) = %v, expected 2", got)
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	if err := os.WriteFile(path, []byte("score:\n  continues: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("score:\n  continues: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Score.Continues != 4 {
			t.Errorf("reloaded Continues = %d, expected 4", cfg.Score.Continues)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}
