// Package config loads wordladder settings from layered sources:
// embedded TOML defaults, an optional user TOML file, then WORDLADDER_
// environment variables (WORDLADDER_SEARCH_MAX_DEPTH → search.max_depth),
// then caller overrides such as command-line flags.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORDLADDER_"

// AppName names the XDG config directory.
const AppName = "wordladder"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("config: invalid configuration")

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config is the full settings tree.
type Config struct {
	Dictionary Dictionary `koanf:"dictionary"`
	Graph      Graph      `koanf:"graph"`
	Search     Search     `koanf:"search"`
	Report     Report     `koanf:"report"`
}

// Dictionary selects and filters the word source.
type Dictionary struct {
	Path          string `koanf:"path" validate:"required"`
	LowercaseOnly bool   `koanf:"lowercase_only"`
	LettersOnly   bool   `koanf:"letters_only"`
}

// Graph tunes word graph construction.
type Graph struct {
	Wildcard string `koanf:"wildcard" validate:"required"`
	Eager    bool   `koanf:"eager"`
}

// Search bounds each ladder search. Zero means unbounded.
type Search struct {
	MaxDepth int           `koanf:"max_depth" validate:"gte=0"`
	Timeout  time.Duration `koanf:"timeout" validate:"gte=0"`
}

// Report controls the timing harness.
type Report struct {
	Parallelism int `koanf:"parallelism" validate:"gte=1,lte=64"`
}

var validate = validator.New()

// WildcardRune returns the configured wildcard as a rune.
func (c *Config) WildcardRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Graph.Wildcard)
	return r
}

// Validate checks field constraints and that the wildcard is one rune.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if n := utf8.RuneCountInString(c.Graph.Wildcard); n != 1 {
		return fmt.Errorf("%w: graph.wildcard must be one rune, got %q", ErrInvalid, c.Graph.Wildcard)
	}

	return nil
}

// DefaultPath returns the user config file location under XDG_CONFIG_HOME.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// Load builds a Config from defaults, the TOML file at path and the
// environment. An empty path means DefaultPath, which may be absent; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, e.g.
// {"dictionary.path": "/tmp/words"}. Nil or empty overrides are ignored.
func LoadWithOverrides(path string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load user config if it exists
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// 3. Load env vars: WORDLADDER_SEARCH_MAX_DEPTH → search.max_depth
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Caller overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps an environment variable name to a koanf key. The first
// underscore after the prefix separates the section; the rest stay as
// underscores inside the field name.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))

	return strings.Replace(key, "_", ".", 1)
}
