package httpserver

import (
	"errors"
	"time"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Config is the environment form of the server options.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Validate reports every invalid setting at once. It is called by config.Load.
func (c *Config) Validate() error {
	positive := validator.Positive[time.Duration]()
	fields := []validator.Checker{
		validator.NewField("HTTP_ADDR", c.Addr, validator.All(validator.RequiredString(), validator.NoWhitespace())),
		validator.NewField("HTTP_READ_TIMEOUT", c.ReadTimeout, positive),
		validator.NewField("HTTP_WRITE_TIMEOUT", c.WriteTimeout, positive),
		validator.NewField("HTTP_IDLE_TIMEOUT", c.IdleTimeout, positive),
		validator.NewField("HTTP_SHUTDOWN_TIMEOUT", c.ShutdownTimeout, positive),
	}
	_, err := validator.Report(fields, func(validator.Values) struct{} { return struct{}{} })
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// NewFromConfig creates a Server from cfg. Zero values keep the defaults and
// opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	return New(append(configOpts, opts...)...)
}
