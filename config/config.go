package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the calculator's configuration
type Config struct {
	// Engine settings
	Engine struct {
		Precision   int  `toml:"precision"`    // default bit width for new engines
		Signed      bool `toml:"signed"`       // default signedness for arithmetic ops
		EnableTrace bool `toml:"enable_trace"` // log every operation to the trace file
	} `toml:"engine"`

	// Inspector (TUI) settings
	Inspector struct {
		HistorySize   int  `toml:"history_size"`
		ShowBinary    bool `toml:"show_binary"`
		ShowCarryFlag bool `toml:"show_carry_flag"`
	} `toml:"inspector"`

	// Display settings
	Display struct {
		ColorOutput  bool   `toml:"color_output"`
		DefaultBase  string `toml:"default_base"` // bin, oct, dec, hex
		UpperHex     bool   `toml:"upper_hex"`
		NumberFormat string `toml:"number_format"` // hex, dec, both
	} `toml:"display"`

	// Trace settings
	Trace struct {
		OutputFile    string `toml:"output_file"`
		IncludeCarry  bool   `toml:"include_carry"`
		IncludeTiming bool   `toml:"include_timing"`
		MaxEntries    int    `toml:"max_entries"`
	} `toml:"trace"`

	// API server settings
	API struct {
		Port           int  `toml:"port"`
		EnableBroker   bool `toml:"enable_broker"`
		SessionTimeout int  `toml:"session_timeout_seconds"`
	} `toml:"api"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Engine defaults
	cfg.Engine.Precision = 64
	cfg.Engine.Signed = true
	cfg.Engine.EnableTrace = false

	// Inspector defaults
	cfg.Inspector.HistorySize = 1000
	cfg.Inspector.ShowBinary = true
	cfg.Inspector.ShowCarryFlag = true

	// Display defaults
	cfg.Display.ColorOutput = true
	cfg.Display.DefaultBase = "dec"
	cfg.Display.UpperHex = false
	cfg.Display.NumberFormat = "hex"

	// Trace defaults
	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.IncludeCarry = true
	cfg.Trace.IncludeTiming = true
	cfg.Trace.MaxEntries = 100000

	// API defaults
	cfg.API.Port = 8080
	cfg.API.EnableBroker = true
	cfg.API.SessionTimeout = 1800

	return cfg
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\strcalc\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "strcalc")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/strcalc/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "strcalc")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\strcalc\logs
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "strcalc", "logs")

	case "darwin", "linux":
		// macOS/Linux: ~/.local/share/strcalc/logs
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "strcalc", "logs")

	default:
		return "logs"
	}

	// Ensure directory exists
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
