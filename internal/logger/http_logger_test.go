package logger

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func attrMap(attrs []slog.Attr) map[string]string {
	out := make(map[string]string, len(attrs))
	for _, a := range attrs {
		out[a.Key] = a.Value.String()
	}
	return out
}

func TestHeaderAttrsRedactsCredentials(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Authorization", "Bearer secret-token")
	hdr.Set("Cookie", "token=secret-token")
	hdr.Set("Content-Type", "application/json")
	hdr.Set("X-Internal", "dropped")

	got := attrMap(HeaderAttrs(hdr))

	require.Equal(t, "***", got["http.header.authorization"])
	require.Equal(t, "***", got["http.header.cookie"])
	require.Equal(t, "application/json", got["http.header.content-type"])
	require.NotContains(t, got, "http.header.x-internal")
}

func TestLogHTTPRequestKeepsBodyReadable(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add?search=gold", strings.NewReader(`{"productId":"p1"}`))
	req.Header.Set("Content-Type", "application/json")

	got := attrMap(LogHTTPRequest(req, "outgoing::request"))

	require.Equal(t, "POST", got["http.method"])
	require.Equal(t, "/api/cart/add", got["http.path"])
	require.Equal(t, "gold", got["http.query.search"])
	require.Equal(t, "p1", got["http.body.productId"])

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"productId":"p1"}`, string(body))
}

func TestFlattenJSONSamplesArrays(t *testing.T) {
	attrs, err := jsonAttrs([]byte(`{"success":true,"products":[{"name":"a"},{"name":"b"},{"name":"c"}]}`))
	require.NoError(t, err)

	got := attrMap(attrs)
	require.Equal(t, "true", got["http.body.success"])
	require.Equal(t, "a", got["http.body.products.0.name"])
	require.Equal(t, "c", got["http.body.products.2.name"])
	require.NotContains(t, got, "http.body.products.1.name")
}

func TestFormAttrsRedactsTokenFields(t *testing.T) {
	attrs, err := formAttrs([]byte("productId=p1&token=abc"))
	require.NoError(t, err)

	got := attrMap(attrs)
	require.Equal(t, "p1", got["http.body.productId"])
	require.Equal(t, "***", got["http.body.token"])
}

func TestBuildLogEntryIsLokiShaped(t *testing.T) {
	now := time.Unix(1700000000, 0)
	entry := buildLogEntry("storefront", "error", "Shop Load Error", []slog.Attr{slog.String("error", "boom")}, now)

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded struct {
		Streams []struct {
			Stream map[string]string `json:"stream"`
			Values [][]string        `json:"values"`
		} `json:"streams"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Streams, 1)
	require.Equal(t, "storefront", decoded.Streams[0].Stream["job"])
	require.Equal(t, "error", decoded.Streams[0].Stream["level"])
	require.Equal(t, "1700000000000000000", decoded.Streams[0].Values[0][0])
	require.Contains(t, decoded.Streams[0].Values[0][1], `"error":"boom"`)
}
