package domain

import (
	"os"
	"time"
)

// DefaultAccessKeyEnv is consulted when provider.access_key_env is empty.
const DefaultAccessKeyEnv = "NUMVERIFY_ACCESS_KEY"

// ProviderTimeout returns the per-request timeout, falling back to the default.
func (c *Config) ProviderTimeout() time.Duration {
	if c.Provider.TimeoutSeconds <= 0 {
		return DefaultHTTPClientTimeout
	}
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

// AccessKeyEnv returns the name of the environment variable holding the provider key.
func (c *Config) AccessKeyEnv() string {
	if c.Provider.AccessKeyEnv == "" {
		return DefaultAccessKeyEnv
	}
	return c.Provider.AccessKeyEnv
}

// AccessKey reads the provider key from the environment. Empty means none.
func (c *Config) AccessKey() string {
	return os.Getenv(c.AccessKeyEnv())
}

// LookupConcurrency returns how many batch lookups may run at once.
func (c *Config) LookupConcurrency() int {
	if c.Preferences.Concurrency <= 0 {
		return DefaultLookupConcurrency
	}
	return c.Preferences.Concurrency
}

// Region returns the default region used to format numbers without a country code.
func (c *Config) Region() string {
	if c.Preferences.DefaultRegion == "" {
		return DefaultRegion
	}
	return c.Preferences.DefaultRegion
}
