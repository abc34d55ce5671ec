// ABOUTME: Lift configuration: JSON file under XDG config, .env file, LIFT_* overrides.
// ABOUTME: Resolves the data directory, local user, server address and token settings.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/storage"
	"github.com/joho/godotenv"
)

const (
	defaultAddr     = ":8080"
	defaultTokenTTL = 72 * time.Hour
	defaultLogLevel = "info"
	dbFileName      = "lift.db"
)

// Config stores lift configuration.
type Config struct {
	// DataDir is the directory holding lift.db.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/lift.
	DataDir string `json:"data_dir,omitempty"`

	// UserID is the identity used by the local CLI and MCP server.
	UserID string `json:"user_id,omitempty"`

	// Addr is the HTTP listen address for `lift serve`.
	Addr string `json:"addr,omitempty"`

	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string `json:"jwt_secret,omitempty"`

	// TokenTTL is a Go duration string such as "72h".
	TokenTTL string `json:"token_ttl,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
	LogJSON  bool   `json:"log_json,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBPath returns the SQLite database path inside the data directory.
func (c *Config) GetDBPath() string {
	return filepath.Join(c.GetDataDir(), dbFileName)
}

// GetUserID returns the local identity, falling back to the login name.
func (c *Config) GetUserID() string {
	if c.UserID != "" {
		return c.UserID
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// GetAddr returns the HTTP listen address.
func (c *Config) GetAddr() string {
	if c.Addr == "" {
		return defaultAddr
	}
	return c.Addr
}

// GetTokenTTL parses TokenTTL, defaulting to 72 hours.
func (c *Config) GetTokenTTL() (time.Duration, error) {
	if c.TokenTTL == "" {
		return defaultTokenTTL, nil
	}
	ttl, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid token_ttl %q: %w", c.TokenTTL, err)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("invalid token_ttl %q: must be positive", c.TokenTTL)
	}
	return ttl, nil
}

// GetLogLevel returns the log level name.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return defaultLogLevel
	}
	return c.LogLevel
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite store in the configured data directory.
func (c *Config) OpenStorage() (*storage.DB, error) {
	return storage.Open(c.GetDBPath())
}

// ApplyEnv overrides fields from LIFT_* environment variables.
func (c *Config) ApplyEnv() error {
	strs := map[string]*string{
		"LIFT_DATA_DIR":   &c.DataDir,
		"LIFT_USER_ID":    &c.UserID,
		"LIFT_ADDR":       &c.Addr,
		"LIFT_JWT_SECRET": &c.JWTSecret,
		"LIFT_TOKEN_TTL":  &c.TokenTTL,
		"LIFT_LOG_LEVEL":  &c.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("LIFT_LOG_JSON"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LIFT_LOG_JSON %q: %w", v, err)
		}
		c.LogJSON = b
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lift", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
