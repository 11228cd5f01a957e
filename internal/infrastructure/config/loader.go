// Package config loads and persists the findphone YAML configuration.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/assets"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/pkg/filesystem"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "FINDPHONE_CONFIG"

// FileLoader loads YAML configuration from ~/.findphone/config.yaml (overridable via FINDPHONE_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	loadDotEnv(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path); err != nil {
				return domain.Config{}, fmt.Errorf("write default config: %w", err)
			}
			return hydrateDefaults(cfg), nil
		}
		return domain.Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filesystem.AppDir("config.yaml")
}

// loadDotEnv reads .env files from the config directory and the working
// directory. Variables already set in the environment win.
func loadDotEnv(configDir string) {
	for _, candidate := range []string{filepath.Join(configDir, ".env"), ".env"} {
		if _, err := os.Stat(candidate); err == nil {
			_ = godotenv.Load(candidate)
		}
	}
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

// writeDefault stores the embedded defaults verbatim.
func writeDefault(path string) error {
	return os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Save writes the given config back to disk.
func (l *FileLoader) Save(cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := ensureConfigDir(l.resolvePath()); err != nil {
		return err
	}
	return os.WriteFile(l.resolvePath(), raw, domain.SecureFilePermissions)
}

// Reset overwrites the config with defaults and returns the default snapshot.
func (l *FileLoader) Reset() (domain.Config, error) {
	cfg := defaultConfig()
	if err := l.Save(cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// Backup copies the current config file to a timestamped backup.
func (l *FileLoader) Backup() (string, error) {
	path := l.resolvePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102T150405"))
	if err := os.WriteFile(backup, data, domain.SecureFilePermissions); err != nil {
		return "", err
	}
	return backup, nil
}

func defaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return cfg
}

// DefaultConfig returns the embedded defaults with paths expanded.
func DefaultConfig() domain.Config {
	return hydrateDefaults(defaultConfig())
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Provider.Endpoint == "" {
		cfg.Provider.Endpoint = defaultConfig().Provider.Endpoint
	}
	if cfg.Provider.AccessKeyEnv == "" {
		cfg.Provider.AccessKeyEnv = domain.DefaultAccessKeyEnv
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = domain.HistoryBackendSQLite
	}
	if cfg.History.Path != "" {
		cfg.History.Path = filesystem.ExpandPath(cfg.History.Path)
	}
	if cfg.History.RedisKey == "" {
		cfg.History.RedisKey = domain.DefaultRedisKey
	}
	if cfg.Contacts.Permission == "" {
		cfg.Contacts.Permission = domain.PolicyPrompt
	}
	if cfg.Contacts.AddressBook == "" {
		cfg.Contacts.AddressBook = filesystem.AppDir("contacts.yaml")
	} else {
		cfg.Contacts.AddressBook = filesystem.ExpandPath(cfg.Contacts.AddressBook)
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
