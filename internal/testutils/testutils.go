package testutils

import (
	"testing"

	"github.com/nfrund/sevahub/internal/config"
)

// TestSessionSecret signs session cookies in tests.
const TestSessionSecret = "a-very-secret-key-for-testing-!"

// ConfigForTests returns a valid configuration pointing at apiBaseURL.
// Extra key/value pairs override the defaults.
func ConfigForTests(t *testing.T, apiBaseURL string, overrides map[string]string) *config.Config {
	t.Helper()

	env := map[string]string{
		"APP_ENV":        "test",
		"API_BASE_URL":   apiBaseURL,
		"API_TIMEOUT":    "2s",
		"SESSION_SECRET": TestSessionSecret,
		"LOG_FORMAT":     "text",
		"LOG_LEVEL":      "error",
	}
	for k, v := range overrides {
		env[k] = v
	}

	cfg, err := config.FromEnv(func(key string) string { return env[key] })
	if err != nil {
		t.Fatalf("failed to build test config: %v", err)
	}
	return cfg
}
