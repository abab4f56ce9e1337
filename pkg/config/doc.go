// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: Load reads
// the optional .env file once, parses the environment into a struct through its
// `env` tags and caches the result per type. A struct implementing Validator is
// checked right after parsing, so an invalid value fails Load instead of
// surfacing later.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// LoadEnv reads additional .env files and Reset clears the cache in tests.
package config
