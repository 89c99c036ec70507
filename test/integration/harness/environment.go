package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own TECLA_HOME.
type TestEnvironment struct {
	TeclaHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp TECLA_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		TeclaHome: tb.TempDir(),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out TECLA_* variables and sets:
//   - TECLA_HOME to the temp directory
//   - TECLA_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := make(map[string]bool)
	overrideKeys["TECLA_HOME"] = true
	overrideKeys["TECLA_DEBUG"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing TECLA_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "TECLA_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	// Add isolated environment variables
	env = append(env,
		"TECLA_HOME="+e.TeclaHome,
		"TECLA_DEBUG=",
	)

	// Add extra environment variables
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test bindings database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.TeclaHome, "bindings.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.TeclaHome, "settings.json")
}

// WriteSettings writes a settings.json into the test home.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
