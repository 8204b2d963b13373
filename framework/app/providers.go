package app

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/km-arc/go-sui/framework/config"
	"github.com/km-arc/go-sui/framework/container"
	"github.com/km-arc/go-sui/framework/host"
	"github.com/km-arc/go-sui/framework/metrics"
	"github.com/km-arc/go-sui/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the configuration from .env and builds the
// application logger from LOG_LEVEL.
type ConfigServiceProvider struct {
	BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *Application) {
	app.Config = config.Load(p.EnvFiles...)
	app.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: app.Config.App.LogLevel,
	}))
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider creates the Prometheus registry and the Container
// collector when SUI_METRICS is enabled.
type MetricsServiceProvider struct {
	BaseProvider
}

func (p *MetricsServiceProvider) Register(app *Application) {
	if !app.Config.Container.Metrics {
		return
	}
	reg := prometheus.NewRegistry()
	app.Gatherer = reg
	app.Metrics = metrics.New(metrics.WithRegistry(reg))
}

// Boot exposes the registry at /metrics, whether or not the Container is
// published.
func (p *MetricsServiceProvider) Boot(app *Application) {
	if app.Gatherer == nil {
		return
	}
	app.Router.Mount("/metrics", promhttp.HandlerFor(app.Gatherer, promhttp.HandlerOpts{}))
}

// ── ContainerServiceProvider ──────────────────────────────────────────────────

// ContainerServiceProvider builds the instance Container and installs it as
// the process-wide default.
type ContainerServiceProvider struct {
	BaseProvider
}

func (p *ContainerServiceProvider) Register(app *Application) {
	opts := []container.Option{
		container.WithLogger(app.Logger),
		container.WithIDLength(app.Config.Container.IDLength),
	}
	if app.Metrics != nil {
		opts = append(opts, container.WithObserver(app.Metrics))
	}
	app.Container = container.New(opts...)
	container.SetDefault(app.Container)
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
type RoutingServiceProvider struct {
	BaseProvider
}

func (p *RoutingServiceProvider) Register(app *Application) {
	app.Router = routing.New()
}

// ── HostServiceProvider ───────────────────────────────────────────────────────

// HostServiceProvider publishes the Container to the host page. Headless
// deployments skip this step.
type HostServiceProvider struct {
	BaseProvider
}

func (p *HostServiceProvider) Boot(app *Application) {
	if !host.Detect(app.Config.Host) {
		app.Logger.Info("headless host, container not published")
		return
	}
	host.Publish(app.Router, app.Container, app.Config.Host.Prefix)
	app.published = true
	app.Logger.Debug("container published", "prefix", app.Config.Host.Prefix)
}
