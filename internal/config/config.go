package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides. A double underscore separates
// levels: REVERBFX_PLAYER__DURATION=90s sets player.duration.
const EnvPrefix = "REVERBFX_"

//go:embed defaults.yaml
var defaultsYAML []byte

// rawBytes serves embedded YAML to koanf.
type rawBytes []byte

func (r rawBytes) ReadBytes() ([]byte, error) { return r, nil }

func (r rawBytes) Read() (map[string]interface{}, error) {
	return nil, errors.New("rawBytes provider requires a parser")
}

// confMap serves nested overrides (for example a JS object decoded from the
// page) to koanf.
type confMap map[string]interface{}

func (c confMap) ReadBytes() ([]byte, error) {
	return nil, errors.New("confMap provider does not support ReadBytes")
}

func (c confMap) Read() (map[string]interface{}, error) { return c, nil }

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Load layers the embedded defaults, the YAML file at path (skipped when path
// is empty or missing), REVERBFX_* environment variables and finally
// overrides, then validates the result.
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	k, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confMap(overrides), nil); err != nil {
			return nil, fmt.Errorf("loading overrides: %w", err)
		}
	}

	return decode(k)
}

func decode(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(rawBytes(defaultsYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading defaults: %w", err)
	}
	return k, nil
}

// Default returns the embedded defaults alone. The environment is not read.
func Default() *Config {
	k, err := loadDefaults()
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	cfg, err := decode(k)
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

// YAML renders the configuration as it would appear in a config file.
func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}
