package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (a copy of the loaded struct)
)

// Load fills cfg from the environment. The first call for a type parses the
// environment; later calls copy the cached value. A .env file in the working
// directory is loaded once, if present, without overriding real variables.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}
	key := reflect.TypeFor[T]()
	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}
	if err := Parse(cfg); err != nil {
		return err
	}
	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on error. Meant for startup code.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from the environment without caching.
func Parse[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}
	return nil
}

// ParseFrom fills cfg from vars instead of the process environment.
func ParseFrom[T any](cfg *T, vars map[string]string) error {
	if cfg == nil {
		return ErrNilConfig
	}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}
	return nil
}

// LoadYAML decodes the YAML file at path into v. A missing file leaves v untouched.
func LoadYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %w", ErrReadingFile, path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parse %s: %w", ErrParsingConfig, path, err)
	}
	return nil
}
