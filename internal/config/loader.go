package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by configs that can reject unusable values.
type validator interface {
	Validate() error
}

// decode unmarshals data over the hardcoded defaults and validates the result.
func decode[T any](data []byte, fallback func() T) (T, error) {
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback(), err
	}
	if v, ok := any(cfg).(validator); ok {
		if err := v.Validate(); err != nil {
			return fallback(), err
		}
	}
	return cfg, nil
}

// load resolves a config file for name and decodes it over the hardcoded defaults,
// so a partial file only overrides the keys it sets. Files that fail validation
// are skipped in the search; a custom path that fails returns the defaults and an error.
// Search order: customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	filename := name + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data, fallback)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := decode(data, fallback); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := decode(embedded, fallback)
	if err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadDodge loads dodge configuration.
func LoadDodge(customPath string) (DodgeConfig, error) {
	return load("dodge", customPath, defaultDodgeYAML, DefaultDodgeConfig)
}

// LoadWater loads water configuration.
func LoadWater(customPath string) (WaterConfig, error) {
	return load("water", customPath, defaultWaterYAML, DefaultWaterConfig)
}

// LoadForest loads forest configuration.
func LoadForest(customPath string) (ForestConfig, error) {
	return load("forest", customPath, defaultForestYAML, DefaultForestConfig)
}

// LoadSolar loads solar configuration.
func LoadSolar(customPath string) (SolarConfig, error) {
	return load("solar", customPath, defaultSolarYAML, DefaultSolarConfig)
}

// LoadGauntlet loads gauntlet configuration.
func LoadGauntlet(customPath string) (GauntletConfig, error) {
	return load("gauntlet", customPath, defaultGauntletYAML, DefaultGauntletConfig)
}

// Names lists the config names Effective understands.
func Names() []string {
	return []string{"dodge", "water", "forest", "solar", "gauntlet"}
}

// Effective returns the resolved configuration for name as YAML.
func Effective(name, customPath string) ([]byte, error) {
	var (
		v   any
		err error
	)
	switch name {
	case "dodge":
		v, err = LoadDodge(customPath)
	case "water":
		v, err = LoadWater(customPath)
	case "forest":
		v, err = LoadForest(customPath)
	case "solar":
		v, err = LoadSolar(customPath)
	case "gauntlet":
		v, err = LoadGauntlet(customPath)
	default:
		return nil, fmt.Errorf("config: unknown config %q", name)
	}
	if err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("config: encode %s: %w", name, err)
	}
	return out, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
