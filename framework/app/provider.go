package app

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider wires one part of the Application.
//
// Register runs as soon as the provider is added and should only assign
// fields. Boot runs after every provider has registered, so it may use
// anything the others set up.
//
//	type AuditProvider struct{ app.BaseProvider }
//
//	func (p *AuditProvider) Boot(a *app.Application) {
//	    a.Logger.Info("container ready", "kinds", len(a.Container.All()))
//	}
type ServiceProvider interface {
	Register(app *Application)
	Boot(app *Application)
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with no-op Register and Boot.
// Embed it in your provider and only override what you need.
type BaseProvider struct{}

func (p *BaseProvider) Register(_ *Application) {}
func (p *BaseProvider) Boot(_ *Application)     {}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders.
type ProviderRegistry struct {
	app        *Application
	providers  []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Application) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method. Registering the
// same provider twice is a no-op.
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	provider.Register(r.app)
	r.providers = append(r.providers, provider)

	// If already booted, boot this provider immediately
	if r.booted {
		provider.Boot(r.app)
	}
}

// Boot calls Boot() on all providers in registration order.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.providers {
		provider.Boot(r.app)
	}
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
