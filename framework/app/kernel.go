package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/km-arc/go-sui/framework/config"
	"github.com/km-arc/go-sui/framework/container"
	"github.com/km-arc/go-sui/framework/metrics"
	"github.com/km-arc/go-sui/framework/routing"
)

// Application holds everything the kit needs at runtime. Service providers
// fill it in during New and Boot.
type Application struct {
	Config    *config.Config
	Logger    *slog.Logger
	Container *container.Container
	Metrics   *metrics.Collector
	Gatherer  prometheus.Gatherer
	Router    *routing.Router
	Providers *ProviderRegistry

	published bool
}

// New creates the application and registers the core providers.
func New(envFiles ...string) *Application {
	app := &Application{}
	app.Providers = NewProviderRegistry(app)

	// Order matters: the Container needs the logger and the collector.
	app.Providers.Register(&ConfigServiceProvider{EnvFiles: envFiles})
	app.Providers.Register(&MetricsServiceProvider{})
	app.Providers.Register(&ContainerServiceProvider{})
	app.Providers.Register(&RoutingServiceProvider{})
	app.Providers.Register(&HostServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Published reports whether the Container was published to the host.
func (a *Application) Published() bool { return a.published }

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }

// Run boots the application (if needed) and serves HTTP on APP_PORT until
// ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		a.Boot()
	}

	srv := &http.Server{
		Addr:              ":" + a.Config.App.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server listening",
			"app", a.Config.App.Name,
			"addr", srv.Addr,
			"env", a.Environment(),
			"published", a.published,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.Logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
