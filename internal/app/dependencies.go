// Package app wires the portal's services together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/do/v2"

	"github.com/thepitchdeck/portal/internal/applications"
	"github.com/thepitchdeck/portal/internal/backend"
	"github.com/thepitchdeck/portal/internal/competitions"
	"github.com/thepitchdeck/portal/internal/config"
	"github.com/thepitchdeck/portal/internal/pubsub"
	"github.com/thepitchdeck/portal/internal/rendering"
	"github.com/thepitchdeck/portal/internal/telemetry"
)

// Dependencies holds the services the HTTP server is built from.
type Dependencies struct {
	Config       *config.Config
	Logger       *slog.Logger
	Publisher    pubsub.Publisher
	Subscriber   pubsub.Subscriber
	Renderer     *rendering.UniversalRenderer
	Registry     *prometheus.Registry
	Reporter     *telemetry.Reporter
	Sink         *telemetry.Sink
	Backend      *backend.Client
	Catalog      *competitions.Service
	Applications *applications.Service
}

// NewInjector registers every portal service with a fresh injector.
// Services are built lazily on first invocation.
func NewInjector(cfg *config.Config, logger *slog.Logger) *do.RootScope {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)

	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*prometheus.Registry, error) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		return reg, nil
	})
	do.Provide(i, func(i do.Injector) (*telemetry.Metrics, error) {
		return telemetry.NewMetrics(do.MustInvoke[*prometheus.Registry](i))
	})
	do.Provide(i, func(i do.Injector) (*telemetry.Reporter, error) {
		return telemetry.NewReporter(do.MustInvoke[*pubsub.WatermillBridge](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*telemetry.Sink, error) {
		logger := do.MustInvoke[*slog.Logger](i).With("component", "diagnostics")
		return telemetry.NewSink(logger, do.MustInvoke[*telemetry.Metrics](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*backend.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return backend.New(cfg.APIBaseURL, cfg.APITimeout), nil
	})
	do.Provide(i, func(i do.Injector) (*competitions.Service, error) {
		return competitions.NewService(do.MustInvoke[*backend.Client](i), do.MustInvoke[*telemetry.Reporter](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*applications.Service, error) {
		return applications.NewService(applications.NewValidator(), do.MustInvoke[*backend.Client](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	return i
}

// Resolve builds every service registered by NewInjector.
func Resolve(i do.Injector) (Dependencies, error) {
	var deps Dependencies
	var err error
	invoke := func(fn func() error) {
		if err == nil {
			err = fn()
		}
	}
	invoke(func() (e error) { deps.Config, e = do.Invoke[*config.Config](i); return })
	invoke(func() (e error) { deps.Logger, e = do.Invoke[*slog.Logger](i); return })
	invoke(func() error {
		bus, e := do.Invoke[*pubsub.WatermillBridge](i)
		deps.Publisher, deps.Subscriber = bus, bus
		return e
	})
	invoke(func() (e error) { deps.Renderer, e = do.Invoke[*rendering.UniversalRenderer](i); return })
	invoke(func() (e error) { deps.Registry, e = do.Invoke[*prometheus.Registry](i); return })
	invoke(func() (e error) { deps.Reporter, e = do.Invoke[*telemetry.Reporter](i); return })
	invoke(func() (e error) { deps.Sink, e = do.Invoke[*telemetry.Sink](i); return })
	invoke(func() (e error) { deps.Backend, e = do.Invoke[*backend.Client](i); return })
	invoke(func() (e error) { deps.Catalog, e = do.Invoke[*competitions.Service](i); return })
	invoke(func() (e error) { deps.Applications, e = do.Invoke[*applications.Service](i); return })
	if err != nil {
		return Dependencies{}, fmt.Errorf("resolve dependencies: %w", err)
	}
	return deps, nil
}

// StartDiagnostics subscribes the diagnostics sink. It runs until ctx ends
// or the bus is shut down.
func (d Dependencies) StartDiagnostics(ctx context.Context) error {
	if err := d.Sink.Start(ctx, d.Subscriber); err != nil {
		return fmt.Errorf("start diagnostics sink: %w", err)
	}
	return nil
}
