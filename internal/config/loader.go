package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Loader merges configuration sources in precedence order.
type Loader struct {
	fs        afero.Fs
	dir       string
	koanf     *koanf.Koanf
	validator *validator.Validate
}

// NewLoader creates a Loader reading config files from fsys.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{
		fs:        fsys,
		koanf:     koanf.New("."),
		validator: validator.New(),
	}
}

// WithDir makes the loader look for DefaultFile in dir instead of the
// working directory.
func (l *Loader) WithDir(dir string) *Loader {
	l.dir = dir
	return l
}

// Load builds the configuration. Sources are applied lowest precedence first:
// defaults, the YAML file at path (or DefaultFile when path is empty and it
// exists), the environment, then overrides keyed by koanf path.
func (l *Loader) Load(path string, overrides map[string]any) (*Config, error) {
	l.koanf = koanf.New(".")

	if err := l.koanf.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := l.loadFile(path); err != nil {
		return nil, err
	}

	if err := l.loadEnvironment(); err != nil {
		return nil, err
	}

	for key, value := range overrides {
		if err := l.koanf.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return l.unmarshalAndValidate()
}

// loadFile reads a YAML file. A missing DefaultFile is not an error; a
// missing explicit path is. Relative paths are resolved against the
// loader's directory.
func (l *Loader) loadFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(l.dir, path)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(raw) == 0 {
		return nil
	}

	if err := l.koanf.Load(rawMap(raw), nil); err != nil {
		return fmt.Errorf("failed to apply config file %s: %w", path, err)
	}

	return nil
}

func (l *Loader) loadEnvironment() error {
	err := l.koanf.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			// Unknown NULLABLEGEN_* variables map to an empty key and are dropped.
			return envMappings[key], value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}

	return nil
}

func (l *Loader) unmarshalAndValidate() (*Config, error) {
	var cfg Config

	if err := l.koanf.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := l.validator.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// rawMap is a koanf.Provider adapter for map[string]any data.
type rawMap map[string]any

func (r rawMap) Read() (map[string]any, error) {
	return r, nil
}

func (r rawMap) ReadBytes() ([]byte, error) {
	return nil, errors.New("ReadBytes not implemented")
}
