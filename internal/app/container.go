package app

import (
	"context"
	"fmt"
	"io"

	appconfig "github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/application/config"
	appcontacts "github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/application/contacts"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/application/doctor"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/application/lookup"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/application/session"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/infrastructure/config"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/infrastructure/contacts"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/infrastructure/history"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/infrastructure/numverify"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/pkg/logger"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// Interaction is the terminal surface used for permission prompts and
// contact selection.
type Interaction interface {
	ports.PermissionAsker
	ports.ContactChooser
}

// Options controls container construction.
type Options struct {
	Verbose    bool
	ConfigPath string
	UI         Interaction
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config          domain.Config
	ConfigProvider  ports.ConfigProvider
	ConfigLoader    *config.FileLoader
	Logger          ports.Logger
	LookupClient    ports.LookupClient
	HistoryStore    ports.HistoryRepository
	ContactImporter ports.ContactImporter
	LookupService   *lookup.Service
	DoctorService   *doctor.Service
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgLoader.Path(), err)
	}

	log := logger.NewStd(opts.Verbose || cfg.Preferences.Verbose)

	historyStore, err := history.Open(ctx, cfg.History)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if sqlite, ok := historyStore.(*history.SQLiteStore); ok && sqlite.Degraded() {
		log.Warn("sqlite unavailable, using jsonl history", map[string]interface{}{"path": sqlite.Location()})
	}

	client := numverify.New(numverify.Options{
		Endpoint:          cfg.Provider.Endpoint,
		AccessKey:         cfg.AccessKey(),
		Timeout:           cfg.ProviderTimeout(),
		RequestsPerMinute: cfg.Provider.RequestsPerMinute,
		Logger:            log,
	})

	var asker ports.PermissionAsker
	var chooser ports.ContactChooser
	if opts.UI != nil {
		asker, chooser = opts.UI, opts.UI
	}
	importer := &appcontacts.Importer{
		Gate:   contacts.NewPolicyGate(cfg.Contacts.Permission, asker),
		Picker: contacts.NewAddressBookPicker(cfg.Contacts.AddressBook, chooser, log),
		Logger: log,
	}

	lookupService := &lookup.Service{
		Client:      client,
		History:     historyStore,
		Logger:      log,
		Concurrency: cfg.LookupConcurrency(),
	}

	doctorService := &doctor.Service{
		ConfigProvider:  cfgLoader,
		History:         historyStore,
		LoadAddressBook: contacts.LoadAddressBook,
	}

	return &Container{
		Config:          cfg,
		ConfigProvider:  cfgLoader,
		ConfigLoader:    cfgLoader,
		Logger:          log,
		LookupClient:    client,
		HistoryStore:    historyStore,
		ContactImporter: importer,
		LookupService:   lookupService,
		DoctorService:   doctorService,
	}, nil
}

// NewSession returns a fresh lookup session bound to the container's adapters.
func (c *Container) NewSession() *session.Controller {
	return session.NewController(session.Options{
		Client:   c.LookupClient,
		History:  c.HistoryStore,
		Contacts: c.ContactImporter,
		Logger:   c.Logger,
	})
}

// Close releases resources held by the history store.
func (c *Container) Close() error {
	if closer, ok := c.HistoryStore.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
