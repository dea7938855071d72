package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Upload   UploadConfig   `toml:"upload"`
	Paint    PaintConfig    `toml:"paint"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig selects the track store driver and where files live on disk.
type StorageConfig struct {
	Driver     string `toml:"driver"`
	DataDir    string `toml:"data_dir"`
	TracksFile string `toml:"tracks_file"`
	UploadsDir string `toml:"uploads_dir"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// UploadConfig contains upload limits.
type UploadConfig struct {
	MaxSizeMB         int64   `toml:"max_size_mb"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// PaintConfig contains the pixel dimensions of the paint surface and the gradient picker.
type PaintConfig struct {
	Width        int `toml:"width"`
	Height       int `toml:"height"`
	PickerWidth  int `toml:"picker_width"`
	PickerHeight int `toml:"picker_height"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their embedded default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports obviously broken settings.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "json", "sqlite":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}
	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("%w: upload.max_size_mb must be positive", ErrInvalidConfig)
	}
	if c.Paint.Width <= 0 || c.Paint.Height <= 0 || c.Paint.PickerWidth <= 0 || c.Paint.PickerHeight <= 0 {
		return fmt.Errorf("%w: paint dimensions must be positive", ErrInvalidConfig)
	}
	if c.Paint.PickerWidth%2 != 0 {
		return fmt.Errorf("%w: paint.picker_width must be even", ErrInvalidConfig)
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// TracksPath returns the path of the JSON track file.
func (c *Config) TracksPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.TracksFile)
}

// MaxUploadBytes returns the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Upload.MaxSizeMB * 1024 * 1024
}
