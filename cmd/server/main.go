// Package main boots the service: it loads the profile configuration,
// assembles the dependency graph with samber/do v2, runs the HTTP server
// alongside the event dispatcher, and drains both on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/dkoleva/trackflow/internal/adapters/audit"
	adapthttp "github.com/dkoleva/trackflow/internal/adapters/http"
	"github.com/dkoleva/trackflow/internal/adapters/http/handlers"
	"github.com/dkoleva/trackflow/internal/adapters/http/middleware"
	"github.com/dkoleva/trackflow/internal/adapters/repo/memory"
	"github.com/dkoleva/trackflow/internal/app"
	"github.com/dkoleva/trackflow/internal/events"
	"github.com/dkoleva/trackflow/internal/platform/config"
	"github.com/dkoleva/trackflow/internal/platform/health"
	"github.com/dkoleva/trackflow/internal/platform/httpclient"
	"github.com/dkoleva/trackflow/internal/platform/logging"
	"github.com/dkoleva/trackflow/internal/platform/telemetry"
	"github.com/dkoleva/trackflow/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout     = 15 * time.Second
	dispatcherShutdownTimeout = 10 * time.Second
	otelShutdownTimeout       = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel, err := initTelemetry(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(injector, cfg, logger, profile)

	// Invoking the server wires the whole graph eagerly.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	dispatcher := do.MustInvoke[*events.Dispatcher](injector)
	dispatcher.Start()

	// Health checkers register after wiring. The outbound audit client
	// exists only when webhook delivery is enabled.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	if cfg.Events.WebhookEnabled {
		registry.Register(do.MustInvoke[*httpclient.Client](injector))
	}

	srvDone := make(chan error, 1)
	go func() {
		srvDone <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-srvDone:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdown(logger, server, srvDone, dispatcher, otel)
	return nil
}

// shutdown drains in dependency order: stop accepting HTTP traffic first so
// no new events get published, then flush the event buffer, then telemetry.
func shutdown(
	logger *slog.Logger,
	server *adapthttp.Server,
	srvDone <-chan error,
	dispatcher *events.Dispatcher,
	otel *otelStack,
) {
	srvCtx, cancelSrv := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancelSrv()
	if err := server.Shutdown(srvCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-srvDone

	dispCtx, cancelDisp := context.WithTimeout(context.Background(), dispatcherShutdownTimeout)
	defer cancelDisp()
	if err := dispatcher.Close(dispCtx); err != nil {
		logger.Error("dispatcher shutdown error", slog.Any("error", err))
	}

	otelCtx, cancelOtel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancelOtel()
	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
}

// otelStack holds the OpenTelemetry providers for lifecycle management.
// Every field is nil when telemetry is disabled.
type otelStack struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers, tolerating nil ones.
func (o *otelStack) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelStack, error) {
	if !cfg.Telemetry.Enabled {
		return &otelStack{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelStack{tracer: tp, meter: mp, metrics: metrics}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, profile string) {
	do.Provide(injector, func(_ do.Injector) (ports.WorkflowRepository, error) {
		return memory.NewWorkflowRepo(), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.TaskRepository, error) {
		return memory.NewTaskRepo(), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.ProjectDirectory, error) {
		dir := memory.NewDirectory()
		if profile == "local" {
			seedLocalDirectory(dir)
		}
		return dir, nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "audit-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*events.Dispatcher, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		sinks := []events.Sink{audit.NewLogSink(logger, metrics)}
		if cfg.Events.WebhookEnabled {
			client := do.MustInvoke[*httpclient.Client](i)
			sinks = append(sinks, audit.NewWebhookSink(client, cfg.Events.WebhookPath))
		}

		return events.NewDispatcher(logger,
			cfg.Events.BufferSize,
			cfg.Events.MaxWorkers,
			cfg.Events.DeliverTimeout,
			sinks...,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (*app.ProjectLocks, error) {
		return app.NewProjectLocks(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.WorkflowService, error) {
		workflows := do.MustInvoke[ports.WorkflowRepository](i)
		tasks := do.MustInvoke[ports.TaskRepository](i)
		directory := do.MustInvoke[ports.ProjectDirectory](i)
		locks := do.MustInvoke[*app.ProjectLocks](i)
		return app.NewWorkflowService(workflows, tasks, directory, locks, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		tasks := do.MustInvoke[ports.TaskRepository](i)
		workflows := do.MustInvoke[ports.WorkflowRepository](i)
		directory := do.MustInvoke[ports.ProjectDirectory](i)
		locks := do.MustInvoke[*app.ProjectLocks](i)
		dispatcher := do.MustInvoke[*events.Dispatcher](i)
		return app.NewTaskService(tasks, workflows, directory, locks, dispatcher, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.WorkflowHandler, error) {
		svc := do.MustInvoke[ports.WorkflowService](i)
		return handlers.NewWorkflowHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewTaskHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		workflowH := do.MustInvoke[*handlers.WorkflowHandler](i)
		taskH := do.MustInvoke[*handlers.TaskHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(workflowH, taskH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// seedLocalDirectory loads a demo tenant so the API is usable out of the box
// under the local profile. Real deployments resolve projects and memberships
// through the identity service instead.
func seedLocalDirectory(dir *memory.Directory) {
	dir.AddProject("tenant-local", "project-demo", "member", "reviewer")
	dir.SetMember("tenant-local", "project-demo", "user-admin", "admin")
	dir.SetMember("tenant-local", "project-demo", "user-member", "member")
	dir.SetMember("tenant-local", "project-demo", "user-reviewer", "reviewer")
}
