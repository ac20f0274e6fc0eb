package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/hexcard/internal/fonts"
	"github.com/arcanaland/hexcard/internal/render"
)

// Config represents the application configuration
type Config struct {
	AssetDir     string       `toml:"asset_dir"`
	CacheArtwork bool         `toml:"cache_artwork"`
	Fonts        fonts.Config `toml:"fonts"`
	Palette      Palette      `toml:"palette"`
}

// Palette overrides the base fill colors with hex strings like "#dcdcdc".
// Empty entries keep the stock color.
type Palette struct {
	Snow   string `toml:"snow"`
	Desert string `toml:"desert"`
	Swamp  string `toml:"swamp"`
	Field  string `toml:"field"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDefaultAssetDir returns where terrain artwork lives unless configured otherwise
func GetDefaultAssetDir() string {
	return filepath.Join(GetXDGDataHome(), "hexcard", "img")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "hexcard", "config.toml")
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		AssetDir: GetDefaultAssetDir(),
		Fonts:    fonts.DefaultConfig(),
	}
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if config.AssetDir == "" {
		config.AssetDir = GetDefaultAssetDir()
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}

	return config, nil
}

// RenderPalette merges the configured overrides into the stock palette
func (c *Config) RenderPalette() (render.Palette, error) {
	p := render.DefaultPalette()
	overrides := []struct {
		name  string
		value string
		dst   *color.NRGBA
	}{
		{"snow", c.Palette.Snow, &p.Snow},
		{"desert", c.Palette.Desert, &p.Desert},
		{"swamp", c.Palette.Swamp, &p.Swamp},
		{"field", c.Palette.Field, &p.Field},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		parsed, err := colorful.Hex(o.value)
		if err != nil {
			return render.Palette{}, fmt.Errorf("palette.%s: %w", o.name, err)
		}
		r, g, b := parsed.RGB255()
		*o.dst = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return p, nil
}
