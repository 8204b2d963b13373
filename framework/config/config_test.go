package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/km-arc/go-sui/framework/config"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func setEnv(t *testing.T, key, val string) {
	t.Helper()
	t.Setenv(key, val) // automatically restored after test
}

// unsetAfter removes keys a .env file wrote into the process environment.
func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	// No env set → verify all defaults
	cfg := config.Load("testdata/missing.env")

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"App.Name", cfg.App.Name, "go-sui"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"App.LogLevel", cfg.App.LogLevel, slog.LevelInfo},
		{"Container.IDLength", cfg.Container.IDLength, 9},
		{"Container.Metrics", cfg.Container.Metrics, true},
		{"Host.Headless", cfg.Host.Headless, false},
		{"Host.Prefix", cfg.Host.Prefix, "/sui"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	setEnv(t, "APP_NAME", "Storefront")
	setEnv(t, "APP_ENV", "production")
	setEnv(t, "SUI_ID_LENGTH", "12")
	setEnv(t, "SUI_HEADLESS", "true")
	setEnv(t, "LOG_LEVEL", "warn")

	cfg := config.Load("testdata/missing.env")

	if cfg.App.Name != "Storefront" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "Storefront")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.Container.IDLength != 12 {
		t.Errorf("Container.IDLength: got %d want 12", cfg.Container.IDLength)
	}
	if !cfg.Host.Headless {
		t.Error("expected Host.Headless to be true")
	}
	if cfg.App.LogLevel != slog.LevelWarn {
		t.Errorf("App.LogLevel: got %v want WARN", cfg.App.LogLevel)
	}
}

func TestLoad_InvalidLogLevelFallsBack(t *testing.T) {
	setEnv(t, "LOG_LEVEL", "chatty")
	if cfg := config.Load("testdata/missing.env"); cfg.App.LogLevel != slog.LevelInfo {
		t.Errorf("App.LogLevel: got %v want INFO", cfg.App.LogLevel)
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "SUI_PREFIX=/widgets\nSUI_METRICS=false\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	os.Unsetenv("SUI_PREFIX")
	os.Unsetenv("SUI_METRICS")
	unsetAfter(t, "SUI_PREFIX", "SUI_METRICS")

	cfg := config.Load(path)

	if cfg.Host.Prefix != "/widgets" {
		t.Errorf("Host.Prefix: got %q want /widgets", cfg.Host.Prefix)
	}
	if cfg.Container.Metrics {
		t.Error("expected Container.Metrics to be false")
	}
}

// ── Get / GetInt / GetBool ───────────────────────────────────────────────────

func TestGet_ReturnsFallback(t *testing.T) {
	os.Unsetenv("MISSING_KEY")
	if got := config.Get("MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("got %q want %q", got, "fallback")
	}
}

func TestGetInt_ReturnsFallbackOnInvalid(t *testing.T) {
	setEnv(t, "SOME_INT", "notanint")
	if got := config.GetInt("SOME_INT", 99); got != 99 {
		t.Errorf("got %d want %d", got, 99)
	}
}

func TestGetBool_True(t *testing.T) {
	for _, val := range []string{"true", "1", "True", "TRUE"} {
		setEnv(t, "BOOL_KEY", val)
		if !config.GetBool("BOOL_KEY", false) {
			t.Errorf("expected true for %q", val)
		}
	}
}

func TestGetBool_ReturnsFallbackOnInvalid(t *testing.T) {
	setEnv(t, "BOOL_KEY", "notabool")
	if config.GetBool("BOOL_KEY", true) != true {
		t.Error("expected fallback true")
	}
}
