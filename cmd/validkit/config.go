package main

import (
	"errors"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

// AppConfig is read from the environment by config.Load.
type AppConfig struct {
	AppEnv             string `env:"APP_ENV" envDefault:"development"`
	ServiceName        string `env:"SERVICE_NAME" envDefault:"validkit"`
	LogLevel           string `env:"LOG_LEVEL"`
	LogFormat          string `env:"LOG_FORMAT"`
	ValidateConcurrent bool   `env:"VALIDATE_CONCURRENT" envDefault:"false"`
	BatchConcurrency   int    `env:"BATCH_CONCURRENCY" envDefault:"0"`
}

var errInvalidAppConfig = errors.New("invalid application configuration")

func (c *AppConfig) Validate() error {
	fields := []validator.Checker{
		validator.NewField("APP_ENV", c.AppEnv,
			validator.OneOf("development", "dev", "staging", "stage", "production", "prod")),
		validator.NewField("SERVICE_NAME", c.ServiceName,
			validator.All(validator.RequiredString(), validator.NoWhitespace())),
		validator.NewField("LOG_LEVEL", c.LogLevel,
			validator.OneOf("", "debug", "info", "warn", "error", "DEBUG", "INFO", "WARN", "ERROR")),
		validator.NewField("LOG_FORMAT", c.LogFormat, validator.OneOf("", "json", "text")),
		validator.NewField("BATCH_CONCURRENCY", c.BatchConcurrency, validator.Min(0)),
	}
	if _, err := validator.Report(fields, func(validator.Values) struct{} { return struct{}{} }); err != nil {
		return errors.Join(errInvalidAppConfig, err)
	}
	return nil
}
