package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lirantal/railil/pkg/config"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.Endpoint != "https://rail-api.rail.co.il/rjpa/api/v1/timetable/searchTrain" {
		t.Errorf("unexpected default endpoint %q", cfg.API.Endpoint)
	}
	if cfg.API.Key == "" {
		t.Error("expected a default subscription key")
	}
	if cfg.API.TimeoutSeconds != 10 {
		t.Errorf("unexpected default timeout %d", cfg.API.TimeoutSeconds)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "api:\n  endpoint: https://example.com/timetable\n  timeoutSeconds: 3\n"
	if err := os.WriteFile(filepath.Join(dir, "railil.yml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.Endpoint != "https://example.com/timetable" {
		t.Errorf("expected file endpoint, got %q", cfg.API.Endpoint)
	}
	if cfg.API.TimeoutSeconds != 3 {
		t.Errorf("expected file timeout, got %d", cfg.API.TimeoutSeconds)
	}
	if cfg.API.Key == "" {
		t.Error("expected key to fall back to the default")
	}
}

func TestLoadEnvKeyOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RAIL_API_KEY", "my-own-key")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.Key != "my-own-key" {
		t.Errorf("expected env key override, got %q", cfg.API.Key)
	}
}

func TestLoadRejectsBadEndpoint(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "railil.yml"), []byte("api:\n  endpoint: not-a-url\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	if _, err := config.Load(); err == nil {
		t.Error("expected validation error for malformed endpoint")
	}
}
