package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs in priority order: a field set by
// an earlier source is never overwritten by a later one. Source errors are
// accumulated and surface from build.
type configBuilder struct {
	args    []string
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{
		args:    args,
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// load runs every source and merges the result over the defaults.
func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).withEnv().withFlags().withJSON().build()
}

// build does not validate: the server and the client require different
// groups.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("read config sources: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, part := range b.configs {
		if err := mergo.Merge(merged, part); err != nil {
			return nil, fmt.Errorf("merge config: %w", err)
		}
	}
	if err := mergo.Merge(merged, defaults()); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return merged, nil
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	return b.add(cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags(b.args))
}

// withJSON reads the file named by the last source that set one.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}
