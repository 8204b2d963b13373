package app_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/km-arc/go-sui/framework/app"
	"github.com/km-arc/go-sui/framework/components"
	"github.com/km-arc/go-sui/framework/container"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newApp(t *testing.T) *app.Application {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	previous := container.Default()
	t.Cleanup(func() { container.SetDefault(previous) })
	return app.New("testdata/missing.env")
}

func get(t *testing.T, a *app.Application, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

// ── stub providers ────────────────────────────────────────────────────────────

type recordingProvider struct {
	app.BaseProvider
	registerCalled int
	bootCalled     int
}

func (p *recordingProvider) Register(_ *app.Application) { p.registerCalled++ }
func (p *recordingProvider) Boot(_ *app.Application)     { p.bootCalled++ }

// ── Bootstrap ────────────────────────────────────────────────────────────────

func TestNew_WiresContainer(t *testing.T) {
	a := newApp(t)

	if a.Container == nil {
		t.Fatal("Container should be built during New")
	}
	if container.Default() != a.Container {
		t.Error("the application Container should be the process-wide default")
	}
	if a.Metrics == nil || a.Gatherer == nil {
		t.Error("metrics should be enabled by default")
	}
}

func TestBoot_PublishesContainer(t *testing.T) {
	a := newApp(t)
	a.Boot()

	if !a.Published() {
		t.Fatal("expected the Container to be published")
	}

	_, err := components.NewModal(a.Container, components.Options{ID: "checkout"})
	if err != nil {
		t.Fatalf("NewModal: %v", err)
	}

	if rr := get(t, a, "/sui/container/Modal/checkout"); rr.Code != http.StatusOK {
		t.Errorf("GET published instance: got %d want 200", rr.Code)
	}

	rr := get(t, a, "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /metrics: got %d want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `sui_container_instances{component="Modal"} 1`) {
		t.Errorf("metrics output missing Modal gauge:\n%s", rr.Body.String())
	}
}

func TestBoot_HeadlessSkipsPublication(t *testing.T) {
	t.Setenv("SUI_HEADLESS", "true")
	a := newApp(t)
	a.Boot()

	if a.Published() {
		t.Error("headless host must not publish")
	}
	if rr := get(t, a, "/sui/container"); rr.Code != http.StatusNotFound {
		t.Errorf("GET /sui/container: got %d want 404", rr.Code)
	}
	if a.Container == nil {
		t.Error("the Container must still exist when headless")
	}
}

func TestBoot_HeadlessStillServesMetrics(t *testing.T) {
	t.Setenv("SUI_HEADLESS", "true")
	a := newApp(t)
	a.Boot()

	_, _ = components.NewTabs(a.Container, components.Options{ID: "settings"})

	rr := get(t, a, "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /metrics: got %d want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `sui_container_instances{component="Tabs"} 1`) {
		t.Errorf("metrics output missing Tabs gauge:\n%s", rr.Body.String())
	}
}

func TestNew_MetricsDisabled(t *testing.T) {
	t.Setenv("SUI_METRICS", "false")
	a := newApp(t)
	a.Boot()

	if a.Metrics != nil {
		t.Error("metrics should be disabled")
	}
	if rr := get(t, a, "/metrics"); rr.Code != http.StatusNotFound {
		t.Errorf("GET /metrics: got %d want 404", rr.Code)
	}
}

func TestNew_CustomPrefixAndIDLength(t *testing.T) {
	t.Setenv("SUI_PREFIX", "/widgets")
	t.Setenv("SUI_ID_LENGTH", "5")
	a := newApp(t)
	a.Boot()

	w, err := components.NewTooltip(a.Container, components.Options{})
	if err != nil {
		t.Fatalf("NewTooltip: %v", err)
	}
	if len(w.ID()) != 5 {
		t.Errorf("generated id length: got %d want 5", len(w.ID()))
	}
	if rr := get(t, a, "/widgets/container/Tooltip/"+w.ID()); rr.Code != http.StatusOK {
		t.Errorf("GET under custom prefix: got %d want 200", rr.Code)
	}
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestRegistry_RegisterThenBoot(t *testing.T) {
	a := newApp(t)
	p := &recordingProvider{}

	a.Register(p)
	if p.registerCalled != 1 {
		t.Errorf("Register calls: got %d want 1", p.registerCalled)
	}
	if p.bootCalled != 0 {
		t.Error("Boot() should NOT be called before application Boot()")
	}

	a.Boot()
	a.Boot()
	if p.bootCalled != 1 {
		t.Errorf("Boot calls: got %d want 1", p.bootCalled)
	}
}

func TestRegistry_DuplicateIgnored(t *testing.T) {
	a := newApp(t)
	p := &recordingProvider{}

	a.Register(p)
	a.Register(p)
	if p.registerCalled != 1 {
		t.Errorf("Register calls: got %d want 1", p.registerCalled)
	}
}

func TestRegistry_LateProviderBootsImmediately(t *testing.T) {
	a := newApp(t)
	a.Boot()

	p := &recordingProvider{}
	a.Register(p)
	if p.bootCalled != 1 {
		t.Errorf("late provider Boot calls: got %d want 1", p.bootCalled)
	}
	if !a.Providers.Booted() {
		t.Error("Booted() should be true")
	}
}
