// ABOUTME: Tests for lift configuration management.
// ABOUTME: Covers load, save, defaults, env overrides, .env files and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points XDG dirs at a temp dir and blanks every LIFT_* override.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	for _, key := range []string{
		"LIFT_DATA_DIR", "LIFT_USER_ID", "LIFT_ADDR", "LIFT_JWT_SECRET",
		"LIFT_TOKEN_TTL", "LIFT_LOG_LEVEL", "LIFT_LOG_JSON",
	} {
		t.Setenv(key, "")
	}
	return tmpDir
}

func TestDefaults(t *testing.T) {
	tmpDir := isolate(t)
	cfg := &Config{}

	if got := cfg.GetDataDir(); got != filepath.Join(tmpDir, "data", "lift") {
		t.Errorf("GetDataDir() = %q", got)
	}
	if got := cfg.GetDBPath(); got != filepath.Join(tmpDir, "data", "lift", "lift.db") {
		t.Errorf("GetDBPath() = %q", got)
	}
	if got := cfg.GetAddr(); got != ":8080" {
		t.Errorf("GetAddr() = %q, want %q", got, ":8080")
	}
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "info")
	}
	ttl, err := cfg.GetTokenTTL()
	if err != nil || ttl != 72*time.Hour {
		t.Errorf("GetTokenTTL() = %v, %v; want 72h", ttl, err)
	}
}

func TestGetUserIDFallsBackToLogin(t *testing.T) {
	t.Setenv("USER", "lifter")

	if got := (&Config{}).GetUserID(); got != "lifter" {
		t.Errorf("GetUserID() = %q, want %q", got, "lifter")
	}
	if got := (&Config{UserID: "alice"}).GetUserID(); got != "alice" {
		t.Errorf("GetUserID() = %q, want %q", got, "alice")
	}
}

func TestGetTokenTTL(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{"", 72 * time.Hour, false},
		{"30m", 30 * time.Minute, false},
		{"24h", 24 * time.Hour, false},
		{"forever", 0, true},
		{"-1h", 0, true},
	}

	for _, tt := range tests {
		got, err := (&Config{TokenTTL: tt.raw}).GetTokenTTL()
		if (err != nil) != tt.wantErr {
			t.Errorf("GetTokenTTL(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("GetTokenTTL(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/lift-test"}
	if got := cfg.GetDataDir(); got != "/tmp/lift-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/lift-test")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/lift", filepath.Join(home, "data/lift")},
		{"data/lift", "data/lift"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()
	cfg := &Config{DataDir: "~/my-lift"}

	want := filepath.Join(home, "my-lift")
	if got := cfg.GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.DataDir != "" || cfg.UserID != "" || cfg.JWTSecret != "" {
		t.Errorf("Expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	isolate(t)

	cfg := &Config{
		DataDir:   "/tmp/lift-data",
		UserID:    "alice",
		Addr:      "127.0.0.1:9000",
		JWTSecret: "shh",
		TokenTTL:  "1h",
		LogLevel:  "debug",
		LogJSON:   true,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}

	info, err := os.Stat(GetConfigPath())
	if err != nil {
		t.Fatalf("Stat config: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected config mode 0600, got %v", info.Mode().Perm())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)

	if err := (&Config{UserID: "alice", Addr: ":9000"}).Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	t.Setenv("LIFT_USER_ID", "bob")
	t.Setenv("LIFT_JWT_SECRET", "from-env")
	t.Setenv("LIFT_LOG_JSON", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.UserID != "bob" {
		t.Errorf("UserID = %q, want env override %q", cfg.UserID, "bob")
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want file value %q", cfg.Addr, ":9000")
	}
	if cfg.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, "from-env")
	}
	if !cfg.LogJSON {
		t.Error("Expected LogJSON from env")
	}
}

func TestInvalidLogJSONEnv(t *testing.T) {
	isolate(t)
	t.Setenv("LIFT_LOG_JSON", "sometimes")

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid LIFT_LOG_JSON")
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	// godotenv never overrides variables that are set, even to "".
	os.Unsetenv("LIFT_ADDR")
	os.Unsetenv("LIFT_JWT_SECRET")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "LIFT_JWT_SECRET=dotenv-secret\nLIFT_ADDR=:7070\n"
	if err := os.WriteFile(envFile, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), envFile); err != nil {
		t.Fatalf("LoadDotEnv() failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.JWTSecret != "dotenv-secret" {
		t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, "dotenv-secret")
	}
	if cfg.GetAddr() != ":7070" {
		t.Errorf("GetAddr() = %q, want %q", cfg.GetAddr(), ":7070")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := isolate(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	if err := (&Config{UserID: "alice"}).Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "lift")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := isolate(t)

	configDir := filepath.Join(tmpDir, "lift")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := isolate(t)

	want := filepath.Join(tmpDir, "lift", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStorage(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}

	db, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() failed: %v", err)
	}
	defer db.Close()

	if db.Path() != filepath.Join(cfg.DataDir, "lift.db") {
		t.Errorf("Path() = %q", db.Path())
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected {}, got %s", data)
	}
}
