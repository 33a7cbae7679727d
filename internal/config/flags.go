package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a host:port flag value. The host is either empty,
// "localhost" or a literal IP.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the command line of either binary. Flags that are not
// given leave their fields zero.
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)
	var httpAddr, grpcAddr NetAddress

	fs := flag.NewFlagSet("go-notes-keeper", flag.ContinueOnError)

	fs.Var(&httpAddr, "a", "HTTP listen address, host:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC health listen address, host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request timeout, e.g. 30s")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file (same as -c)")

	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "JWT signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "JWT issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "JWT lifetime, e.g. 1h")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "HMAC key for the HashSHA256 header")
	fs.StringVar(&cfg.App.Version, "version", "", "version served on /api/version/")
	fs.DurationVar(&cfg.App.SearchDebounce, "search-debounce", 0, "search debounce, e.g. 300ms")

	fs.StringVar(&cfg.Adapter.HTTPAddress, "adapter-address", "", "notes server URL used by the client")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "client request timeout, e.g. 10s")
	fs.StringVar(&cfg.Client.DB.DSN, "client-db", "", "client session SQLite file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()
	return cfg, nil
}

// String returns "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(rawPort, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host, a.Port = host, port
	return nil
}
