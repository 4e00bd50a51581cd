package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the syntax from a file extension. Anything that is not
// .toml is treated as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads the climber configuration.
// Search order: customPath -> ~/.skyclimb/configs/climb.{yaml,toml} ->
// ./configs/climb.{yaml,toml} -> embedded default -> hard-coded default.
// Files are decoded over the defaults, so partial files only override what
// they name.
func Load(customPath string) (ClimbConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ClimbConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data, FormatFor(customPath))
		if err != nil {
			return ClimbConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data, FormatFor(path)); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultClimbYAML, FormatYAML)
	if err != nil {
		return DefaultClimbConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte, format Format) (ClimbConfig, error) {
	cfg := DefaultClimbConfig()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return ClimbConfig{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ClimbConfig{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return ClimbConfig{}, err
	}
	return cfg, nil
}

// Encode writes cfg in the given syntax.
func Encode(w io.Writer, cfg ClimbConfig, format Format) error {
	if format == FormatTOML {
		return toml.NewEncoder(w).Encode(cfg)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := UserDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "configs", "climb.yaml"),
			filepath.Join(dir, "configs", "climb.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "climb.yaml"),
		filepath.Join("configs", "climb.toml"),
	)
}

// UserDir returns ~/.skyclimb, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyclimb")
}

// DefaultDBPath is where runs and preferences live unless --db says
// otherwise.
func DefaultDBPath() string {
	return "~/.skyclimb/skyclimb.db"
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ClimbConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Score.Continues = 3
		cfg.Physics.ThrustDurationMS = 4000
	case DifficultyHard:
		cfg.Score.Continues = 1
		cfg.Physics.ThrustDurationMS = 2000
	}
}
