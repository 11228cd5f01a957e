// Package doctor runs environment diagnostics for findphone.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	appconfig "github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/application/config"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	History         ports.HistoryRepository
	LoadAddressBook func(path string) (domain.AddressBook, error)
	Timeout         time.Duration
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded version %s", cfg.ConfigFormatVersion)))
	}

	checks = append(checks, s.historyCheck(ctx))
	checks = append(checks, accessKeyCheck(cfg))
	checks = append(checks, s.addressBookCheck(cfg.Contacts.AddressBook))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) historyCheck(ctx context.Context) domain.HealthCheck {
	if s.History == nil {
		return warn("History store", "not initialized")
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultDoctorTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if _, err := s.History.List(ctx, domain.HistoryFilter{Limit: 1}); err != nil {
		return fail("History store", fmt.Sprintf("%s: %v", s.History.Location(), err))
	}
	return ok("History store", s.History.Location())
}

func accessKeyCheck(cfg domain.Config) domain.HealthCheck {
	name := cfg.AccessKeyEnv()
	if cfg.AccessKey() == "" {
		return warn("Access key", fmt.Sprintf("%s not set; requests are sent without access_key", name))
	}
	return ok("Access key", fmt.Sprintf("%s detected", name))
}

func (s *Service) addressBookCheck(path string) domain.HealthCheck {
	if s.LoadAddressBook == nil {
		return warn("Address book", "reader not configured")
	}
	book, err := s.LoadAddressBook(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return warn("Address book", fmt.Sprintf("%s not found; load is unavailable", path))
		}
		return warn("Address book", err.Error())
	}
	return ok("Address book", fmt.Sprintf("%d numbers in %s", len(book.Selections()), path))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
