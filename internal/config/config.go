package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appName = "blackjack"

// Score store backends
const (
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Theme holds the hex colors used to draw cards
type Theme struct {
	Red    string `toml:"red"`
	Black  string `toml:"black"`
	Hidden string `toml:"hidden"`
}

// Config represents the application configuration
type Config struct {
	ScoreBackend string `toml:"score_backend"`
	ScorePath    string `toml:"score_path"`
	Color        bool   `toml:"color"`
	Theme        Theme  `toml:"theme"`

	// colorErr holds a bad BLACKJACK_COLOR until a flag overrides it
	colorErr error
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		ScoreBackend: BackendTOML,
		Color:        true,
		Theme: Theme{
			Red:    "#e63946",
			Black:  "#f1faee",
			Hidden: "#457b9d",
		},
	}
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

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// DefaultScorePath returns where a backend keeps its scores when no path
// is configured. The memory backend has no path.
func DefaultScorePath(backend string) string {
	switch backend {
	case BackendSQLite:
		return filepath.Join(GetXDGDataHome(), appName, "scores.db")
	case BackendMemory:
		return ""
	default:
		return filepath.Join(GetXDGDataHome(), appName, "scores.toml")
	}
}

// LoadConfig loads the config file, creating it on first use, then applies
// environment overrides. A .env file in the working directory is honored.
// The result is not validated so that command line flags can still
// override bad values; call Validate once they are applied.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config = Default()
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	applyEnv(config)
	return config, nil
}

func applyEnv(config *Config) {
	if backend := os.Getenv("BLACKJACK_SCORE_BACKEND"); backend != "" {
		config.ScoreBackend = backend
	}
	if path := os.Getenv("BLACKJACK_SCORE_PATH"); path != "" {
		config.ScorePath = path
	}
	if c := os.Getenv("BLACKJACK_COLOR"); c != "" {
		enabled, err := strconv.ParseBool(c)
		if err != nil {
			config.colorErr = fmt.Errorf("invalid BLACKJACK_COLOR: %w", err)
			return
		}
		config.Color = enabled
	}
}

// SetColor overrides the color setting, discarding any invalid env value
func (c *Config) SetColor(enabled bool) {
	c.Color = enabled
	c.colorErr = nil
}

// Validate checks the color override and that the configured backend is known
func (c *Config) Validate() error {
	if c.colorErr != nil {
		return c.colorErr
	}
	switch c.ScoreBackend {
	case BackendTOML, BackendSQLite, BackendMemory:
		return nil
	default:
		return fmt.Errorf("unknown score backend: %s (expected %s, %s or %s)",
			c.ScoreBackend, BackendTOML, BackendSQLite, BackendMemory)
	}
}

// ResolvedScorePath returns the configured score path or the backend default
func (c *Config) ResolvedScorePath() string {
	if c.ScorePath != "" {
		return c.ScorePath
	}
	return DefaultScorePath(c.ScoreBackend)
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}

	return config, nil
}
