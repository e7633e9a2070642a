package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the configuration of a GridCraft variant.
// Search order: customPath -> ~/.gridcraft/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> hard-coded default.
// Files are decoded over the defaults, so a partial file only changes the
// keys it names. The second result names where the config came from.
func Load(gameID, customPath string) (GridcraftConfig, string, error) {
	filename := gameID + ".yaml"

	// Custom path must exist
	if customPath != "" {
		cfg := DefaultFor(gameID)
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		cfg := DefaultFor(gameID)
		err := decodeFile(path, &cfg)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg := DefaultFor(gameID)
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, SourceEmbedded, nil
		}
	}
	return DefaultFor(gameID), SourceBuiltin, nil
}

// decodeFile reads a YAML file into cfg. A missing file wraps fs.ErrNotExist.
func decodeFile(path string, cfg *GridcraftConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridcraft", "configs", filename)
}
