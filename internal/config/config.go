// Package config loads CLI settings from defaults, an optional TOML or YAML
// file and MARKUP_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/goliatone/go-markup/pkg/css"
)

// EnvPrefix marks environment variables read into the configuration.
const EnvPrefix = "MARKUP_"

// DefaultFiles are looked up by Discover, in order.
var DefaultFiles = []string{"markup.toml", ".markup.toml", "markup.yaml", "markup.yml"}

// Config holds CLI settings.
type Config struct {
	OutDir      string `koanf:"out_dir"`
	Context     string `koanf:"context"`
	ClassPrefix string `koanf:"class_prefix"`
	ClassLength int    `koanf:"class_length"`
	Verbosity   int    `koanf:"verbosity"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"out_dir":      "dist",
		"context":      "",
		"class_prefix": css.DefaultClassPrefix,
		"class_length": css.DefaultClassLength,
		"verbosity":    0,
	}
}

// Load merges defaults, the file at path (skipped when empty) and the
// environment.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Discover returns the first of DefaultFiles present in dir, or "".
func Discover(dir string) string {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// UserDir is the per-user configuration directory, $XDG_CONFIG_HOME/markup.
func UserDir() string {
	return filepath.Join(xdg.ConfigHome, "markup")
}

// DiscoverAll checks dir first and then UserDir.
func DiscoverAll(dir string) string {
	if path := Discover(dir); path != "" {
		return path
	}
	return Discover(UserDir())
}

// Validate rejects settings the engines cannot use.
func (c Config) Validate() error {
	if c.ClassLength <= 0 {
		return fmt.Errorf("config: class_length must be positive, got %d", c.ClassLength)
	}
	if strings.TrimSpace(c.OutDir) == "" {
		return fmt.Errorf("config: out_dir is required")
	}
	return nil
}

// ClassNamer builds the module class-name generator described by c.
func (c Config) ClassNamer() css.ClassNamer {
	return css.RandomClassNamer{Prefix: c.ClassPrefix, Length: c.ClassLength}
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("config: unsupported config file %s", path)
	}
}
