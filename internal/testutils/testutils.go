// Package testutils holds helpers shared by the portal's tests.
package testutils

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/thepitchdeck/portal/internal/app"
	"github.com/thepitchdeck/portal/internal/config"
)

// ConfigForTests loads .env.test from the project root into the test's
// environment, applies overrides on top and returns the parsed config.
func ConfigForTests(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	env, err := godotenv.Read(filepath.Join(projectRoot(t), ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}
	for key, value := range overrides {
		t.Setenv(key, value)
	}

	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("test config: %v", err)
	}
	return cfg
}

// DiscardLogger is a logger for tests that do not inspect log output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Dependencies resolves the full service graph for cfg and shuts it down
// when the test ends.
func Dependencies(t *testing.T, cfg *config.Config) app.Dependencies {
	t.Helper()

	injector := app.NewInjector(cfg, DiscardLogger())
	t.Cleanup(func() { injector.Shutdown() })

	deps, err := app.Resolve(injector)
	if err != nil {
		t.Fatalf("resolve dependencies: %v", err)
	}
	return deps
}

func projectRoot(t *testing.T) string {
	t.Helper()
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}
}
