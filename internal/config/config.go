package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"storefront/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName                string
	AppPort                string
	APIURL                 string
	HTTPTimeoutMs          int64
	StoragePath            string
	Theme                  string
	CurrencySymbol         string
	TraceStdout            bool
	RemoteLogHttpURI       string
	RemoteTraceRpcURI      string
	RemoteProfilingHttpURI string
}

// SafeConfig is the subset of Config that is safe to log.
type SafeConfig struct {
	AppName           string `json:"app_name"`
	AppPort           string `json:"app_port"`
	APIURL            string `json:"api_url"`
	HTTPTimeoutMs     int64  `json:"http_timeout_ms"`
	StoragePath       string `json:"storage_path"`
	Theme             string `json:"theme"`
	TraceStdout       bool   `json:"trace_stdout"`
	RemoteTraceRpcURI string `json:"remote_trace_rpc_uri"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ErrMissingAPIURL = errors.New("missing required environment variable API_URL")

func toSnake(s string) string {
	var out strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && s[i-1] != '_' && !unicode.IsUpper(rune(s[i-1])) {
				out.WriteRune('_')
			}
			out.WriteRune(unicode.ToLower(r))
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// StructAttrs("data", cfg) ➜ []slog.Attr{ slog.String("data.app_port", "8080"), ... }
func StructAttrs(prefix string, s any) []slog.Attr {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	t := v.Type()

	attrs := make([]slog.Attr, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := prefix + "." + jsonKey(f)

		switch v.Field(i).Kind() {
		case reflect.String:
			attrs = append(attrs, slog.String(key, v.Field(i).String()))
		case reflect.Int, reflect.Int64, reflect.Int32:
			attrs = append(attrs, slog.Int64(key, v.Field(i).Int()))
		case reflect.Bool:
			attrs = append(attrs, slog.Bool(key, v.Field(i).Bool()))
		default:
			attrs = append(attrs, slog.Any(key, v.Field(i).Interface()))
		}
	}
	return attrs
}

func jsonKey(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" {
		return strings.Split(tag, ",")[0]
	}
	return toSnake(f.Name)
}

func (c *Config) ToSafeConfig() SafeConfig {
	return SafeConfig{
		AppName:           c.AppName,
		AppPort:           c.AppPort,
		APIURL:            c.APIURL,
		HTTPTimeoutMs:     c.HTTPTimeoutMs,
		StoragePath:       c.StoragePath,
		Theme:             c.Theme,
		TraceStdout:       c.TraceStdout,
		RemoteTraceRpcURI: c.RemoteTraceRpcURI,
	}
}

var (
	configInstance *Config
	configOnce     sync.Once
)

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func setInt64(varName string, fallback int64) int64 {
	val := os.Getenv(varName)
	if val == "" {
		return fallback
	}

	num, err := strconv.ParseInt(val, 10, 64)
	if err != nil || num < 0 {
		logger.Instance().Error("Invalid integer environment variable, using fallback",
			slog.String("name", varName),
			slog.String("value", val),
			slog.Int64("fallback", fallback),
		)
		return fallback
	}
	return num
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".storefront", "storage.yaml")
	}
	return filepath.Join(home, ".storefront", "storage.yaml")
}

// Load reads configuration from the environment. It does not read .env;
// Instance does that once before calling Load.
func Load() (*Config, error) {
	cfg := &Config{
		AppName:                getenv("APP_NAME", "storefront"),
		AppPort:                getenv("APP_PORT", "8080"),
		APIURL:                 strings.TrimRight(os.Getenv("API_URL"), "/"),
		HTTPTimeoutMs:          setInt64("HTTP_TIMEOUT_MS", 0),
		StoragePath:            getenv("STORAGE_PATH", defaultStoragePath()),
		Theme:                  strings.ToLower(getenv("THEME", ThemeLight)),
		CurrencySymbol:         getenv("CURRENCY_SYMBOL", "₹"),
		TraceStdout:            os.Getenv("TRACE_STDOUT") == "true",
		RemoteLogHttpURI:       os.Getenv("REMOTE_LOG_HTTP_URI"),
		RemoteTraceRpcURI:      os.Getenv("REMOTE_TRACE_RPC_URI"),
		RemoteProfilingHttpURI: os.Getenv("REMOTE_PROFILING_HTTP_URI"),
	}

	if cfg.APIURL == "" {
		return nil, ErrMissingAPIURL
	}
	if cfg.Theme != ThemeLight && cfg.Theme != ThemeDark {
		return nil, fmt.Errorf("invalid THEME %q: want %q or %q", cfg.Theme, ThemeLight, ThemeDark)
	}
	return cfg, nil
}

func Instance() *Config {
	configOnce.Do(func() {
		log := logger.Instance()

		if err := godotenv.Load(); err != nil {
			log.Warn("No .env file found, using system environment variables")
		}

		cfg, err := Load()
		if err != nil {
			log.Error("Invalid configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}
		configInstance = cfg

		if cfg.RemoteLogHttpURI == "" {
			log.Warn("Missing REMOTE_LOG_HTTP_URI will skip sending log")
		}
		if cfg.RemoteTraceRpcURI == "" {
			log.Warn("Missing REMOTE_TRACE_RPC_URI will skip sending trace")
		}
		if cfg.RemoteProfilingHttpURI == "" {
			log.Warn("Missing REMOTE_PROFILING_HTTP_URI will skip sending profiling")
		}

		attrs := StructAttrs("data", cfg.ToSafeConfig())
		anyAttrs := make([]any, len(attrs))
		for i, a := range attrs {
			anyAttrs[i] = a
		}
		log.Info("Configuration loaded successfully", anyAttrs...)
	})

	return configInstance
}
