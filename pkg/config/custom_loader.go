package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the given .env files into the
// process environment. Later files take precedence over earlier ones and
// over variables already present. Called without arguments it loads the
// default .env file from the current working directory.
func LoadEnv(filenames ...string) error {
	return godotenv.Overload(filenames...)
}

// MustLoadEnv works like LoadEnv but panics if any file cannot be loaded.
func MustLoadEnv(filenames ...string) {
	if err := LoadEnv(filenames...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ResetCache clears every cached configuration value, so the next Load of
// each type parses the environment again. Intended for tests that mutate
// the environment between loads.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
	globalCache.mu.Unlock()
}

// ForceReloadConfig re-parses the environment into v and replaces the
// cached value for its type, bypassing the load-once behavior. Use after
// the process environment has changed.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.mu.Lock()
	globalCache.values[getTypeName[T]()] = *v
	globalCache.mu.Unlock()
	return nil
}
