// Package config validates findphone configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
)

var validate = validator.New()

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return describe(verrs)
		}
		return err
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	if history.Backend == domain.HistoryBackendRedis && strings.TrimSpace(history.RedisURL) == "" {
		return fmt.Errorf("history.redis_url must be set when history.backend is redis")
	}
	return nil
}

// describe turns validator errors into one readable message keyed by YAML path.
func describe(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := yamlPath(fe.Namespace())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s must be set", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s, got %v", field, strings.ReplaceAll(fe.Param(), " ", "|"), fe.Value()))
		default:
			if fe.Param() != "" {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value()))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s failed %s (got %v)", field, fe.Tag(), fe.Value()))
			}
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

var yamlNames = map[string]string{
	"Provider":          "provider",
	"Endpoint":          "endpoint",
	"TimeoutSeconds":    "timeout",
	"RequestsPerMinute": "requests_per_minute",
	"History":           "history",
	"Backend":           "backend",
	"Contacts":          "contacts",
	"Permission":        "permission",
	"Preferences":       "preferences",
	"DefaultRegion":     "default_region",
	"Concurrency":       "concurrency",
}

// yamlPath maps "Config.Provider.Endpoint" to "provider.endpoint".
func yamlPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if name, ok := yamlNames[p]; ok {
			parts[i] = name
		}
	}
	return strings.Join(parts, ".")
}
