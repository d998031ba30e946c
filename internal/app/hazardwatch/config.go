package hazardwatch

import (
	"context"
	"io"
	"time"

	"github.com/diwise/hazard-watch/internal/app/hazardwatch/alerts"
	"github.com/diwise/hazard-watch/internal/app/hazardwatch/cluster"
	"github.com/diwise/hazard-watch/internal/pkg/sources"
	"gopkg.in/yaml.v2"
)

// Config holds the sync tunables, flood sites and alert rules. It is loaded
// from yaml on top of the defaults, so deployments only override what they
// need to.
type Config struct {
	CacheTTLMs       int `yaml:"cache_ttl_ms"`
	RequestTimeoutMs int `yaml:"request_timeout_ms"`
	FloodTimeoutMs   int `yaml:"flood_timeout_ms"`
	DebounceMs       int `yaml:"debounce_ms"`
	MinZoom          int `yaml:"min_zoom"`
	MaxFeatures      int `yaml:"max_features"`
	KeyPrecision     int `yaml:"key_precision"`
	CacheMaxKeys     int `yaml:"cache_max_keys"`

	Cluster cluster.Options `yaml:"cluster"`
	Sites   []sources.Site  `yaml:"sites"`
	Rules   []alerts.Rule   `yaml:"rules"`
}

func DefaultConfig() *Config {
	return &Config{
		CacheTTLMs:       120_000,
		RequestTimeoutMs: 12_000,
		FloodTimeoutMs:   15_000,
		DebounceMs:       450,
		MinZoom:          7,
		MaxFeatures:      2500,
		KeyPrecision:     3,
		CacheMaxKeys:     15,
		Cluster:          cluster.DefaultOptions(),
		Rules:            alerts.DefaultRules(),
	}
}

func LoadConfig(ctx context.Context, r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	err := yaml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) TTL() time.Duration          { return time.Duration(c.CacheTTLMs) * time.Millisecond }
func (c *Config) Timeout() time.Duration      { return time.Duration(c.RequestTimeoutMs) * time.Millisecond }
func (c *Config) FloodTimeout() time.Duration { return time.Duration(c.FloodTimeoutMs) * time.Millisecond }
func (c *Config) Debounce() time.Duration     { return time.Duration(c.DebounceMs) * time.Millisecond }
