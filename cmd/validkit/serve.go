package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/validkit/pkg/config"
	"github.com/dmitrymomot/validkit/pkg/httpserver"
	"github.com/dmitrymomot/validkit/pkg/metrics"
	"github.com/dmitrymomot/validkit/svc/records"
)

// ServeCmd runs the HTTP API until SIGINT or SIGTERM.
type ServeCmd struct {
	Addr string `help:"Listen address (default from HTTP_ADDR)"`
}

func (s *ServeCmd) Run(g *Global) error {
	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}

	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := records.NewService(
		records.WithLogger(g.Logger),
		records.WithRecorder(metrics.NewPrometheusRecorder(reg)),
		records.WithConcurrentChecks(g.Config.ValidateConcurrent),
		records.WithConcurrency(g.Config.BatchConcurrency),
	)
	router := records.Router(svc,
		records.WithRouterLogger(g.Logger),
		records.WithGatherer(reg),
		records.WithEnvironment(g.Env),
	)

	opts := []httpserver.Option{httpserver.WithLogger(g.Logger)}
	if s.Addr != "" {
		opts = append(opts, httpserver.WithAddr(s.Addr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpserver.NewFromConfig(httpCfg, opts...).Run(ctx, router)
}
