package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by configuration structs that check their own
// values after parsing. Load returns its error joined with ErrInvalidConfig.
type Validator interface {
	Validate() error
}

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache sync.Map // reflect.Type -> *entry

	dotenvOnce sync.Once
)

// Load parses environment variables into v according to its `env` tags.
// The default .env file, if present, is read once before the first parse.
//
// Every configuration type is parsed once per process; later calls copy the
// cached value into v. A failed parse is cached too, so the same error is
// returned until Reset is called.
//
//	type AppConfig struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	raw, _ := cache.LoadOrStore(key, &entry{})
	e := raw.(*entry)

	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		if val, ok := any(&parsed).(Validator); ok {
			if err := val.Validate(); err != nil {
				e.err = errors.Join(ErrInvalidConfig, err)
				return
			}
		}
		e.value = parsed
	})

	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Errorf("load %s: %w", reflect.TypeFor[T](), err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. It does not touch the cache:
// call it before the first Load of any type that depends on these files.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}
