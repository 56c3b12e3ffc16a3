// Package config provides configuration management for fwbump.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultConfigDir  = ".config/fwbump"
	DefaultConfigFile = "config.yaml"

	// DefaultHeaderFile is the header edited when no path argument is given.
	DefaultHeaderFile = "version.h"

	// DefaultKind is the field bumped when no kind argument is given.
	DefaultKind = "build"

	// DefaultProduct is interpolated into FIRMWARE_VERSION_FULL. Matches
	// the string the build scripts have always written.
	DefaultProduct = "ESP32 RTP Transciever"
)

// Sentinel errors for configuration operations.
var (
	ErrInvalidKey  = errors.New("invalid configuration key")
	ErrInvalidKind = errors.New("invalid increment kind")
	ErrNoEditor    = errors.New("$EDITOR environment variable not set")
)

// validKinds contains the allowed increment kinds (unexported).
var validKinds = map[string]bool{
	"major": true,
	"minor": true,
	"patch": true,
	"build": true,
}

// validKeys is built once from Config struct reflection.
var validKeys = buildValidKeys()

// validate is the shared validator instance.
var validate = validator.New()

// Config represents the full fwbump configuration.
type Config struct {
	Product string        `mapstructure:"product" validate:"required"`
	Default DefaultConfig `mapstructure:"default" validate:"required"`
}

// DefaultConfig holds the positional-argument defaults.
type DefaultConfig struct {
	File string `mapstructure:"file" validate:"required"`
	Kind string `mapstructure:"kind" validate:"omitempty,oneof=major minor patch build"`
}

// Validate checks the configuration for errors using struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// IsValidKind returns true if the increment kind is valid.
func IsValidKind(name string) bool {
	return validKinds[name]
}

// ValidKindNames returns the list of valid increment kinds.
func ValidKindNames() []string {
	return []string{"major", "minor", "patch", "build"}
}

// Loader provides configuration loading and saving.
type Loader struct {
	v       *viper.Viper
	path    string
	homeDir string
}

// NewLoader creates a new configuration loader.
func NewLoader() (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}

	configPath := filepath.Join(home, DefaultConfigDir, DefaultConfigFile)

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Environment variable binding
	v.SetEnvPrefix("FWBUMP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind specific env vars to config keys.
	// We intentionally ignore errors here as BindEnv only fails if called with zero arguments.
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("product", "FWBUMP_PRODUCT")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("default.file", "FWBUMP_DEFAULT_FILE")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("default.kind", "FWBUMP_DEFAULT_KIND")

	l := &Loader{
		v:       v,
		path:    configPath,
		homeDir: home,
	}

	// Set defaults before any config reading
	l.setDefaults()

	return l, nil
}

// setDefaults sets all default configuration values using Viper.
func (l *Loader) setDefaults() {
	l.v.SetDefault("product", DefaultProduct)
	l.v.SetDefault("default.file", DefaultHeaderFile)
	l.v.SetDefault("default.kind", DefaultKind)
}

// Load reads the configuration file, creating defaults if it doesn't exist.
func (l *Loader) Load() (*Config, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		if err := l.createDefault(); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// The default header path may be given relative to the home directory.
	cfg.Default.File = l.expandPath(cfg.Default.File)

	return &cfg, nil
}

// Path returns the configuration file path.
func (l *Loader) Path() string {
	return l.path
}

// Get returns a configuration value by dot-notation key.
func (l *Loader) Get(key string) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return l.v.Get(key), nil
}

// Set sets a configuration value by dot-notation key.
func (l *Loader) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	// Validate kind name if setting default.kind
	if key == "default.kind" && value != "" {
		if !validKinds[value] {
			return fmt.Errorf("%w: %s (valid: major, minor, patch, build)", ErrInvalidKind, value)
		}
	}

	l.v.Set(key, value)
	return l.v.WriteConfig()
}

// createDefault writes the default configuration file using Viper.
func (l *Loader) createDefault() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return l.v.SafeWriteConfigAs(l.path)
}

// expandPath replaces ~ with the home directory.
func (l *Loader) expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(l.homeDir, path[2:])
	}
	if path == "~" {
		return l.homeDir
	}
	return path
}

// ValidateKey checks if a key is a valid configuration key.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	if validKeys[key] {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidKey, key)
}

// buildValidKeys builds the set of valid keys from Config struct using reflection.
func buildValidKeys() map[string]bool {
	keys := make(map[string]bool)
	addKeysFromType(reflect.TypeOf(Config{}), "", keys)
	return keys
}

// addKeysFromType recursively adds keys from a struct type.
func addKeysFromType(t reflect.Type, prefix string, keys map[string]bool) {
	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		keys[key] = true

		if field.Type.Kind() == reflect.Struct {
			addKeysFromType(field.Type, key, keys)
		}
	}
}
