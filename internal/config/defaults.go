package config

import "time"

// Default values applied to fields left empty by every source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "go-notes-keeper"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultSearchDebounce = 300 * time.Millisecond
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultAdapterTimeout = 10 * time.Second
	DefaultClientDBDSN    = "notes-client.db"
	DefaultVersion        = "dev"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
			Version:        DefaultVersion,
			SearchDebounce: DefaultSearchDebounce,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Client: Client{
			DB: ClientDBSource{DSN: DefaultClientDBDSN},
		},
	}
}
