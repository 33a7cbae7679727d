package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		HashKey        string   `json:"hash_key"`
		Version        string   `json:"version"`
		SearchDebounce Duration `json:"search_debounce"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Client struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"client,omitempty"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	var raw StructuredJSONConfig
	if err = json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:   raw.App.TokenSignKey,
			TokenIssuer:    raw.App.TokenIssuer,
			TokenDuration:  time.Duration(raw.App.TokenDuration),
			HashKey:        raw.App.HashKey,
			Version:        raw.App.Version,
			SearchDebounce: time.Duration(raw.App.SearchDebounce),
		},
		Storage: Storage{DB: DB{DSN: raw.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:    raw.Server.HTTPAddress,
			GRPCAddress:    raw.Server.GRPCAddress,
			RequestTimeout: time.Duration(raw.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    raw.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(raw.Adapter.RequestTimeout),
		},
		Client: Client{DB: ClientDBSource{DSN: raw.Client.DB.DSN}},
	}, nil
}

// Duration reads either a Go duration string ("1h30m") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(b, &nanos); err != nil {
		return fmt.Errorf("duration must be a string or an integer: %s", b)
	}
	*d = Duration(nanos)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
