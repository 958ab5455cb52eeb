package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix      = "CLOCK"
	configFileName = "advanced-clock.yaml"
	appDirName     = "advanced-clock"
)

// LoadOptions selects the config file and the highest-precedence overrides.
type LoadOptions struct {
	// Path is an explicit config file. A missing explicit file is an error.
	Path string
	// Overrides maps dotted keys (e.g. "window.width") to values, typically
	// the CLI flags the user actually set.
	Overrides map[string]interface{}
}

func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from all sources and validates the result.
func Load(opts LoadOptions) (*Config, string, error) {
	v := newViperInstance()

	path := opts.Path
	if path == "" {
		path = discoverConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, "", fmt.Errorf("config file %s: %w", path, err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// discoverConfigFile returns the first existing default config location.
func discoverConfigFile() string {
	candidates := []string{configFileName}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, appDirName, "config.yaml"))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)
}

// Dump writes cfg as YAML.
func Dump(w io.Writer, cfg *Config) error {
	if cfg == nil {
		return ErrConfigNil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// IsInvalid reports whether err came from validation.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
