package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

// layer is one configuration source. Layers are kept in priority order.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 4)}
}

// add records the outcome of loading one source. A failed source is
// remembered and reported by build, so every broken source shows up at once.
func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if cfg != nil {
		b.layers = append(b.layers, layer{source: source, cfg: cfg})
	}
	return b
}

// build folds the layers into one config. mergo only fills zero fields, so
// the earliest layer holding a value wins.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(config, l.cfg); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}
	flagsCfg, err := parseFlags(fs)
	return b.add("flags", flagsCfg, err)
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	return b.add("env", envCfg, parseEnv(envCfg))
}

// withJSON loads the file named by the first layer that sets a config path,
// so -c beats WASENDER_CONFIG.
func (b *configBuilder) withJSON() *configBuilder {
	for _, l := range b.layers {
		if l.cfg.JSONFilePath != "" {
			jsonCfg, err := parseJSON(l.cfg.JSONFilePath)
			return b.add("json", jsonCfg, err)
		}
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", defaultConfig(), nil)
}
