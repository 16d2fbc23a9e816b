// Package config loads marvin settings from an optional YAML file and
// MARVIN_* environment variables. Environment values win over the file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "marvin.yaml"
	EnvPrefix   = "MARVIN_"
)

type Config struct {
	LogLevel    string      `yaml:"log_level" mapstructure:"log_level"`
	MaxSeedSize int         `yaml:"max_seed_size" mapstructure:"max_seed_size"`
	HTTP        HTTPConfig  `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig `yaml:"cache" mapstructure:"cache"`
}

type HTTPConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// CacheConfig selects the fingerprint cache. Backend is "memory" or "redis".
type CacheConfig struct {
	Enabled       bool          `yaml:"enabled" mapstructure:"enabled"`
	Backend       string        `yaml:"backend" mapstructure:"backend"`
	RedisAddr     string        `yaml:"redis_addr" mapstructure:"redis_addr"`
	RedisPassword string        `yaml:"redis_password" mapstructure:"redis_password"`
	RedisDB       int           `yaml:"redis_db" mapstructure:"redis_db"`
	Prefix        string        `yaml:"prefix" mapstructure:"prefix"`
	TTL           time.Duration `yaml:"ttl" mapstructure:"ttl"`
	MaxEntries    int           `yaml:"max_entries" mapstructure:"max_entries"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:    "off",
		MaxSeedSize: 4096,
		HTTP:        HTTPConfig{Port: 8080},
		Cache: CacheConfig{
			Backend:    "memory",
			RedisAddr:  "localhost:6379",
			Prefix:     "marvin:fp:",
			MaxEntries: 10000,
		},
	}
}

// Load reads path (a missing file means defaults) and then applies the
// MARVIN_* entries of environ.
func Load(path string, environ []string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg, environ); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadDefault is Load with the process environment.
func LoadDefault(path string) (Config, error) {
	return Load(path, os.Environ())
}

// Validate rejects settings no component can run with.
func (c Config) Validate() error {
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port out of range: %d", c.HTTP.Port)
	}
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries must not be negative")
	}
	return nil
}

// sections are the nested blocks reachable as MARVIN_<SECTION>_<KEY>.
var sections = []string{"http", "cache"}

func applyEnv(cfg *Config, environ []string) error {
	values := map[string]any{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		placed := false
		for _, section := range sections {
			if field, found := strings.CutPrefix(key, section+"_"); found {
				sub, _ := values[section].(map[string]any)
				if sub == nil {
					sub = map[string]any{}
					values[section] = sub
				}
				sub[field] = value
				placed = true
				break
			}
		}
		if !placed {
			values[key] = value
		}
	}
	if len(values) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("invalid %s environment: %w", strings.TrimSuffix(EnvPrefix, "_"), err)
	}
	return nil
}
