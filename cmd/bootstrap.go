package cmd

import (
	"fmt"

	"backpack-manager/core/catalog"
	"backpack-manager/core/config"
	"backpack-manager/core/database"
	"backpack-manager/core/logger"
	"backpack-manager/core/steamapi"
	"backpack-manager/core/storage"
	"backpack-manager/feature/accounts"

	"go.uber.org/zap"
)

// env is what every command builds before doing its work.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

// services are the collaborators of commands that talk to Steam.
type services struct {
	store    catalog.Store
	steam    *steamapi.Client
	catalogs *catalog.Loader
	accounts *accounts.Service
}

// loadEnv reads the configuration and builds the logger. verbose forces debug
// logging and Steam request logging.
func loadEnv(verbose bool) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
		cfg.Steam.LogRequests = true
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	return &env{cfg: cfg, log: l}, nil
}

// catalogStore opens the backend the catalog is cached in. Storage and database
// connections are only made when the backend needs them.
func (e *env) catalogStore() (catalog.Store, error) {
	var b catalog.Backends

	switch e.cfg.Catalog.Backend {
	case catalog.BackendStorage:
		client, err := storage.NewClient(e.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		b.Storage, b.Bucket = client, e.cfg.Storage.Bucket
	case catalog.BackendDatabase:
		db, err := database.Connect(e.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		b.DB = db
	}

	store, err := catalog.NewStore(e.cfg.Catalog, b)
	if err != nil {
		return nil, err
	}
	e.log.Debug("Catalog store ready", zap.String("backend", e.cfg.Catalog.Backend))
	return store, nil
}

// services builds the Steam client, the catalog loader and the accounts service.
func (e *env) services() (*services, error) {
	store, err := e.catalogStore()
	if err != nil {
		return nil, err
	}

	steam, err := steamapi.NewClient(e.cfg.Steam, e.log.Named("steam"))
	if err != nil {
		return nil, fmt.Errorf("failed to create Steam client: %w", err)
	}

	return &services{
		store:    store,
		steam:    steam,
		catalogs: catalog.NewLoader(store, steam, e.cfg.Steam.Language, e.cfg.Catalog.TTL(), e.log.Named("catalog")),
		accounts: accounts.NewService(steam, e.log.Named("accounts")),
	}, nil
}
