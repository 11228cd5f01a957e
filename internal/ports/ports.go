// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The lookup session, the contact importer and the batch
// service depend only on these abstractions, never on HTTP clients, databases or the
// terminal directly.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., LookupClient, HistoryRepository)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.findphone/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// LookupClient queries the remote number-information provider.
// Implementations issue exactly one request per call and never retry.
// Failures carry domain.KindTransport.
type LookupClient interface {
	Lookup(ctx context.Context, number string) (domain.LookupResult, error)
}

// HistoryRepository persists successful lookups.
// List returns records most recent first.
type HistoryRepository interface {
	Append(ctx context.Context, record domain.HistoryRecord) error
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryRecord, error)
	Clear(ctx context.Context) error
	Location() string
}

// ContactImporter yields one raw phone number picked by the user.
// ok is false when nothing was chosen.
type ContactImporter interface {
	Import(ctx context.Context) (number string, ok bool, err error)
}

// PermissionGate answers platform permission requests.
type PermissionGate interface {
	Request(ctx context.Context, permission domain.Permission) (bool, error)
}

// ContactPicker presents the contact selection surface.
type ContactPicker interface {
	Pick(ctx context.Context) (domain.ContactSelection, bool, error)
}

// PermissionAsker interactively asks the user to grant a permission.
type PermissionAsker interface {
	AskPermission(permission domain.Permission, rationale string) (bool, error)
}

// ContactChooser lets the user choose among address book entries.
// It returns the chosen index, or ok=false on cancel.
type ContactChooser interface {
	ChooseContact(choices []domain.ContactSelection) (index int, ok bool, err error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
