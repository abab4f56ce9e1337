// Package httpserver runs an http.Handler until a context is cancelled and
// then drains in-flight requests within a bounded shutdown timeout.
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	return httpserver.NewFromConfig(cfg, httpserver.WithLogger(log)).Run(ctx, router)
//
// Config carries `env` tags for config.Load and validates itself, reporting
// every invalid setting in one error. HealthCheckHandler serves liveness and
// readiness probes.
package httpserver
