package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PORTAL_API_BASE_URL", "http://localhost:5000")
	t.Setenv("PORTAL_SESSION_SECRET", "a-very-secret-key-for-testing-!")
}

func TestParse_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, "web/static", cfg.StaticDir)
	assert.True(t, cfg.FavouritesToggle)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORTAL_API_TIMEOUT", "750ms")
	t.Setenv("PORTAL_FAVOURITES_TOGGLE", "false")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.APITimeout)
	assert.False(t, cfg.FavouritesToggle)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "missing base url", env: map[string]string{"PORTAL_API_BASE_URL": ""}, want: "invalid config"},
		{name: "base url not a url", env: map[string]string{"PORTAL_API_BASE_URL": "not a url"}, want: "invalid config"},
		{name: "short secret", env: map[string]string{"PORTAL_SESSION_SECRET": "short"}, want: "invalid config"},
		{name: "bad duration", env: map[string]string{"PORTAL_API_TIMEOUT": "soon"}, want: "parse env"},
		{name: "unknown log format", env: map[string]string{"LOG_FORMAT": "xml"}, want: "invalid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Parse()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
