package domain

// Config mirrors ~/.findphone/config.yaml.
type Config struct {
	ConfigFormatVersion string           `yaml:"config_format_version"`
	Provider            ProviderSettings `yaml:"provider"`
	History             HistorySettings  `yaml:"history"`
	Contacts            ContactsSettings `yaml:"contacts"`
	Preferences         Preferences      `yaml:"preferences"`
}

// ProviderSettings configures the remote number-information provider.
type ProviderSettings struct {
	Endpoint          string `yaml:"endpoint" validate:"required,url"`
	AccessKeyEnv      string `yaml:"access_key_env"`
	TimeoutSeconds    int    `yaml:"timeout" validate:"gte=0"`
	RequestsPerMinute int    `yaml:"requests_per_minute" validate:"gte=0"`
}

// HistoryBackend names a history store implementation.
type HistoryBackend string

const (
	HistoryBackendSQLite HistoryBackend = "sqlite"
	HistoryBackendFile   HistoryBackend = "file"
	HistoryBackendRedis  HistoryBackend = "redis"
	HistoryBackendMemory HistoryBackend = "memory"
)

// HistorySettings selects and configures the history store.
type HistorySettings struct {
	Backend  HistoryBackend `yaml:"backend" validate:"oneof=sqlite file redis memory"`
	Path     string         `yaml:"path"`
	RedisURL string         `yaml:"redis_url"`
	RedisKey string         `yaml:"redis_key"`
}

// PermissionPolicy decides how contact permission requests are answered.
type PermissionPolicy string

const (
	PolicyPrompt PermissionPolicy = "prompt"
	PolicyGrant  PermissionPolicy = "granted"
	PolicyDeny   PermissionPolicy = "denied"
)

// ContactsSettings configures the contact importer.
type ContactsSettings struct {
	AddressBook string           `yaml:"address_book"`
	Permission  PermissionPolicy `yaml:"permission" validate:"oneof=prompt granted denied"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultRegion string `yaml:"default_region" validate:"omitempty,len=2"`
	Concurrency   int    `yaml:"concurrency" validate:"gte=0,lte=32"`
	Verbose       bool   `yaml:"verbose"`
}
