package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server.
type Option func(*options)

// WithAddr sets the listen address. It panics on an empty address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: WithAddr: addr cannot be empty")
	}
	return func(o *options) { o.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	return func(o *options) { o.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { o.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) { o.idleTimeout = d }
}

// WithShutdownTimeout bounds the graceful shutdown started when Run's
// context ends.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithShutdownTimeout: duration must be > 0")
	}
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger sets the server logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
