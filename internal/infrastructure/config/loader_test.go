package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")

	loader := NewFileLoader("")
	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := filepath.Join(home, ".findphone", "config.yaml"); loader.Path() != want {
		t.Fatalf("Path() = %q, want %q", loader.Path(), want)
	}
	if _, err := os.Stat(loader.Path()); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if cfg.Provider.Endpoint != "http://apilayer.net/api/validate" {
		t.Fatalf("endpoint = %q", cfg.Provider.Endpoint)
	}
	if cfg.History.Backend != domain.HistoryBackendSQLite {
		t.Fatalf("backend = %q", cfg.History.Backend)
	}
	if want := filepath.Join(home, ".findphone", "history", "history.db"); cfg.History.Path != want {
		t.Fatalf("history path = %q, want %q", cfg.History.Path, want)
	}
	if want := filepath.Join(home, ".findphone", "contacts.yaml"); cfg.Contacts.AddressBook != want {
		t.Fatalf("address book = %q, want %q", cfg.Contacts.AddressBook, want)
	}
	if cfg.Contacts.Permission != domain.PolicyPrompt {
		t.Fatalf("permission = %q", cfg.Contacts.Permission)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := "provider:\n  timeout: 3\nhistory:\n  backend: file\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider.TimeoutSeconds != 3 {
		t.Fatalf("timeout = %d", cfg.Provider.TimeoutSeconds)
	}
	if cfg.Provider.Endpoint == "" || cfg.Provider.AccessKeyEnv != domain.DefaultAccessKeyEnv {
		t.Fatalf("provider defaults missing: %+v", cfg.Provider)
	}
	if cfg.History.Backend != domain.HistoryBackendFile || cfg.History.RedisKey != domain.DefaultRedisKey {
		t.Fatalf("history = %+v", cfg.History)
	}
}

func TestLoadHonoursEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom", "findphone.yaml")
	t.Setenv(EnvConfigPath, path)

	loader := NewFileLoader("")
	if loader.Path() != path {
		t.Fatalf("Path() = %q, want %q", loader.Path(), path)
	}
	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not created at override: %v", err)
	}
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	env := "FINDPHONE_TEST_DOTENV_KEY=from-file\nFINDPHONE_TEST_DOTENV_SET=from-file\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FINDPHONE_TEST_DOTENV_SET", "from-env")
	t.Cleanup(func() { os.Unsetenv("FINDPHONE_TEST_DOTENV_KEY") })

	if _, err := NewFileLoader(path).Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := os.Getenv("FINDPHONE_TEST_DOTENV_KEY"); got != "from-file" {
		t.Fatalf("dotenv value = %q", got)
	}
	if got := os.Getenv("FINDPHONE_TEST_DOTENV_SET"); got != "from-env" {
		t.Fatalf("existing value overridden: %q", got)
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("provider: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveAndBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg := DefaultConfig()
	cfg.Preferences.DefaultRegion = "GB"
	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Preferences.DefaultRegion != "GB" {
		t.Fatalf("region = %q", loaded.Preferences.DefaultRegion)
	}

	backup, err := loader.Backup()
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if !strings.HasPrefix(backup, path+".") || !strings.HasSuffix(backup, ".bak") {
		t.Fatalf("backup path = %q", backup)
	}
	if _, err := os.Stat(backup); err != nil {
		t.Fatalf("backup missing: %v", err)
	}

	reset, err := loader.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if reset.Preferences.DefaultRegion != "US" {
		t.Fatalf("reset region = %q", reset.Preferences.DefaultRegion)
	}
}
