package supervise

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

type Config struct {
	Scope      string `mapstructure:"scope"`
	MaxWorkers int    `mapstructure:"max_workers"`
}

// ConfigFromMap decodes a supervisor config from a generic map, as found
// in an embedding application's config tree.
func ConfigFromMap(m map[string]any) (*Config, error) {
	cfg := &Config{}
	if err := mapstructure.Decode(m, cfg); err != nil {
		return nil, fmt.Errorf("decode supervise config: %w", err)
	}
	return cfg, nil
}

// NewFromConfig builds a supervisor and a batch runner sized per cfg.
func NewFromConfig(cfg *Config, opts ...Option) (*Supervisor, *Group) {
	if cfg.Scope != "" {
		opts = append([]Option{WithScope(cfg.Scope)}, opts...)
	}
	sup := New(opts...)
	return sup, sup.Group(cfg.MaxWorkers)
}
