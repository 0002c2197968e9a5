package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"hookdeck/internal/eventbus"
)

// LocalFileName is the project-local config file looked up next to a deck
const LocalFileName = ".hookdeck.toml"

// Environment overrides
const (
	EnvDeck     = "HOOKDECK_DECK"
	EnvLogLevel = "HOOKDECK_LOG_LEVEL"
	EnvLogFile  = "HOOKDECK_LOG_FILE"
	EnvWatch    = "HOOKDECK_WATCH"
)

// Config represents the application configuration
type Config struct {
	Version       int        `toml:"version"`
	Deck          string     `toml:"deck"`        // deck file; empty means the builtin deck
	StartSlide    string     `toml:"start_slide"` // slide id
	RememberSteps bool       `toml:"remember_steps"`
	Watch         bool       `toml:"watch"`
	LogFile       string     `toml:"log_file"`
	LogLevel      string     `toml:"log_level"`
	UISettings    UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowProgress bool `toml:"show_progress"`
	Mouse        bool `toml:"mouse"`
	AltScreen    bool `toml:"alt_screen"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the user-level config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "hookdeck", "config.toml")
}

// NewConfigService creates a config service for the user-level config file
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path, bus: bus}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when the file
// does not exist. Environment overrides are applied last.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their defaults
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Relative deck paths are relative to the config file
	if cfg.Deck != "" && !filepath.IsAbs(cfg.Deck) {
		cfg.Deck = filepath.Join(filepath.Dir(path), cfg.Deck)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadDotEnv loads a .env file from dir into the process environment.
// A missing file is not an error; existing variables are not overwritten.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config values from HOOKDECK_* variables
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDeck); v != "" {
		cfg.Deck = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvWatch); v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWatch, err)
		}
		cfg.Watch = watch
	}
	return nil
}

// ResolveService picks the config file for a deck: a .hookdeck.toml next to
// the deck wins over the user-level file.
func ResolveService(deckPath string, bus eventbus.EventBus) ConfigService {
	if deckPath != "" {
		local := filepath.Join(filepath.Dir(deckPath), LocalFileName)
		if _, err := os.Stat(local); err == nil {
			return NewConfigServiceWithBus(local, bus)
		}
	}
	return NewConfigServiceWithBus("", bus)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		LogFile:  "hookdeck.log",
		LogLevel: "info",
		UISettings: UISettings{
			ShowProgress: true,
			Mouse:        true,
			AltScreen:    true,
		},
	}
}
