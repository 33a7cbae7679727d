package config

import (
	"fmt"
	"os"
	"time"
)

// ClientConfig is the subset of [StructuredConfig] the terminal client
// reads. Server-only groups are not required to start the client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

type ClientApp struct {
	// HashKey must match the server's, otherwise signed requests are
	// rejected.
	HashKey        string
	SearchDebounce time.Duration
	// Version is printed on the sign-in screen.
	Version string
}

type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

type ClientStorage struct {
	DB ClientDB
}

// ClientDB is the local SQLite session file.
type ClientDB struct {
	DSN string
}

// GetClientConfig loads every source like [GetStructuredConfig] and
// validates only the client groups.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:        cfg.App.HashKey,
			SearchDebounce: cfg.App.SearchDebounce,
			Version:        cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Client.DB.DSN,
			},
		},
	}
}
