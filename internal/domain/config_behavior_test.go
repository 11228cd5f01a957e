package domain_test

import (
	"testing"
	"time"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
)

// TestConfig_ProviderTimeout tests the timeout fallback
func TestConfig_ProviderTimeout(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{name: "uses configured seconds", seconds: 3, want: 3 * time.Second},
		{name: "falls back when zero", seconds: 0, want: domain.DefaultHTTPClientTimeout},
		{name: "falls back when negative", seconds: -1, want: domain.DefaultHTTPClientTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.Config{Provider: domain.ProviderSettings{TimeoutSeconds: tt.seconds}}
			if got := cfg.ProviderTimeout(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestConfig_AccessKey tests reading the provider key from the environment
func TestConfig_AccessKey(t *testing.T) {
	t.Setenv("CUSTOM_KEY", "abc")
	t.Setenv(domain.DefaultAccessKeyEnv, "fallback")

	custom := domain.Config{Provider: domain.ProviderSettings{AccessKeyEnv: "CUSTOM_KEY"}}
	if got := custom.AccessKey(); got != "abc" {
		t.Errorf("custom env: got %q, want %q", got, "abc")
	}

	def := domain.Config{}
	if got := def.AccessKeyEnv(); got != domain.DefaultAccessKeyEnv {
		t.Errorf("default env name: got %q", got)
	}
	if got := def.AccessKey(); got != "fallback" {
		t.Errorf("default env: got %q, want %q", got, "fallback")
	}
}

// TestConfig_Defaults tests preference fallbacks
func TestConfig_Defaults(t *testing.T) {
	var cfg domain.Config
	if got := cfg.LookupConcurrency(); got != domain.DefaultLookupConcurrency {
		t.Errorf("concurrency: got %d", got)
	}
	if got := cfg.Region(); got != domain.DefaultRegion {
		t.Errorf("region: got %q", got)
	}

	cfg.Preferences = domain.Preferences{Concurrency: 2, DefaultRegion: "NL"}
	if cfg.LookupConcurrency() != 2 || cfg.Region() != "NL" {
		t.Errorf("configured preferences ignored: %+v", cfg.Preferences)
	}
}
