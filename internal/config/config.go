package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// APIKeyEnv is the environment variable holding the Gemini credential
const APIKeyEnv = "GEMINI_API_KEY"

// Config represents the application configuration
type Config struct {
	DefaultSpread string `toml:"default_spread"`
	Language      string `toml:"language"`
	LocaleDir     string `toml:"locale_dir"`
	LogLevel      string `toml:"log_level"`
	Gemini        Gemini `toml:"gemini"`
}

// Gemini configures the text generation endpoint
type Gemini struct {
	APIKey            string   `toml:"api_key"`
	Model             string   `toml:"model"`
	BaseURL           string   `toml:"base_url"`
	Timeout           Duration `toml:"timeout"`
	RequestsPerMinute int      `toml:"requests_per_minute"`
}

// Duration is a time.Duration written as a string ("30s") in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultSpread: "three",
		Language:      "en",
		LocaleDir:     GetLocaleDir(),
		LogLevel:      "warn",
		Gemini: Gemini{
			Model:             "gemini-1.5-flash",
			BaseURL:           "https://generativelanguage.googleapis.com/v1beta",
			Timeout:           Duration{30 * time.Second},
			RequestsPerMinute: 15,
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

// GetLocaleDir returns the directory searched for extra language bundles
func GetLocaleDir() string {
	return filepath.Join(GetXDGDataHome(), "tarotsim", "locales")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "tarotsim", "config.toml")
}

// Load loads the config file at path, creating it with defaults if it
// does not exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefaultConfig(path)
	}

	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	if err := Save(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to path
func Save(path string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetDefaultSpread sets the default spread in the config at path
func SetDefaultSpread(path, spread string) error {
	config, err := Load(path)
	if err != nil {
		return err
	}
	config.DefaultSpread = spread
	return Save(path, config)
}

// SetLanguage sets the output language in the config at path
func SetLanguage(path, lang string) error {
	config, err := Load(path)
	if err != nil {
		return err
	}
	config.Language = lang
	return Save(path, config)
}

// ResolveAPIKey picks the credential for the text generation client:
// an explicit flag wins over the environment, which wins over the file.
func ResolveAPIKey(flag string, config *Config) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(APIKeyEnv); env != "" {
		return env
	}
	if config != nil {
		return config.Gemini.APIKey
	}
	return ""
}
