package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_NAME", "APP_PORT", "API_URL", "HTTP_TIMEOUT_MS", "STORAGE_PATH", "THEME",
		"CURRENCY_SYMBOL", "TRACE_STDOUT", "REMOTE_LOG_HTTP_URI", "REMOTE_TRACE_RPC_URI",
		"REMOTE_PROFILING_HTTP_URI",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_URL", "https://api.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com", cfg.APIURL)
	require.Equal(t, "storefront", cfg.AppName)
	require.Equal(t, "8080", cfg.AppPort)
	require.Zero(t, cfg.HTTPTimeoutMs)
	require.Equal(t, ThemeLight, cfg.Theme)
	require.Equal(t, "₹", cfg.CurrencySymbol)
	require.False(t, cfg.TraceStdout)
	require.NotEmpty(t, cfg.StoragePath)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_URL", "http://localhost:5000")
	t.Setenv("HTTP_TIMEOUT_MS", "1500")
	t.Setenv("THEME", "DARK")
	t.Setenv("STORAGE_PATH", "/tmp/storage.yaml")
	t.Setenv("TRACE_STDOUT", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.EqualValues(t, 1500, cfg.HTTPTimeoutMs)
	require.Equal(t, ThemeDark, cfg.Theme)
	require.Equal(t, "/tmp/storage.yaml", cfg.StoragePath)
	require.True(t, cfg.TraceStdout)
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_URL", "http://localhost:5000")
	t.Setenv("HTTP_TIMEOUT_MS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	require.Zero(t, cfg.HTTPTimeoutMs)
}

func TestLoadRequiresAPIURL(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingAPIURL)
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_URL", "http://localhost:5000")
	t.Setenv("THEME", "neon")

	_, err := Load()
	require.Error(t, err)
}

func TestStructAttrsUsesJSONTags(t *testing.T) {
	cfg := &Config{AppName: "storefront", APIURL: "http://x", HTTPTimeoutMs: 5, TraceStdout: true, RemoteLogHttpURI: "secret"}
	attrs := StructAttrs("data", cfg.ToSafeConfig())

	keys := map[string]string{}
	for _, a := range attrs {
		keys[a.Key] = a.Value.String()
	}
	require.Equal(t, "storefront", keys["data.app_name"])
	require.Equal(t, "http://x", keys["data.api_url"])
	require.Equal(t, "5", keys["data.http_timeout_ms"])
	require.Equal(t, "true", keys["data.trace_stdout"])
	for _, v := range keys {
		require.NotEqual(t, "secret", v)
	}
}

func TestToSnake(t *testing.T) {
	require.Equal(t, "app_name", toSnake("AppName"))
	require.Equal(t, "remote_log_http_uri", toSnake("RemoteLogHttp_URI"))
}
