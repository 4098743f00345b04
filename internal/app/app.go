package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/tlvconfig/internal/api"
	"github.com/vk/tlvconfig/internal/config"
	"github.com/vk/tlvconfig/internal/ctxlog"
	"github.com/vk/tlvconfig/internal/engine"
	"github.com/vk/tlvconfig/internal/live"
	"github.com/vk/tlvconfig/internal/metrics"
	"github.com/vk/tlvconfig/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx      context.Context
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	engine   *engine.Engine
	metrics  *metrics.Metrics
	live     *live.Server
	handler  http.Handler
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger, catalog and collectors.
// An unreadable or invalid catalog is fatal and panics.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.CatalogPaths...)
	if err != nil {
		panic(fmt.Errorf("failed to load parameter catalog: %w", err))
	}
	logger.Debug("Catalog loaded and translated into unified model.", "parameters", len(model.Parameters))

	reg, err := registry.New(ctx, model)
	if err != nil {
		panic(err)
	}

	m := metrics.New()
	m.CatalogSize.Set(float64(reg.Len()))

	eng := engine.New(reg, engine.WithStrictValidation(cfg.StrictValidation))
	liveSrv := live.New(ctx, eng, m)

	handler := api.New(reg, eng, m, api.Options{
		AllowedOrigins: cfg.CORSOrigins,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		Mounts:         map[string]http.Handler{live.Path: liveSrv.Handler()},
	}).Handler(ctx)
	logger.Debug("Transports configured.", "strict_validation", eng.Strict())

	return &App{
		ctx:      ctx,
		logger:   logger,
		config:   cfg,
		registry: reg,
		engine:   eng,
		metrics:  m,
		live:     liveSrv,
		handler:  handler,
	}
}

// Registry returns the application's catalog. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Handler returns the complete HTTP handler chain.
func (a *App) Handler() http.Handler {
	return a.handler
}
