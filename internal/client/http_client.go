package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

var HttpClientTracer = otel.Tracer("HttpClient")

// HTTPClient wraps net/http with base URL resolution, JSON bodies, trace
// propagation and request logging. A zero timeout means no timeout.
type HTTPClient struct {
	client  *http.Client
	baseURL string
	headers map[string]string
}

type RequestOptions struct {
	Method      string
	URL         string
	Headers     map[string]string
	QueryParams map[string]string
	Body        interface{}
	Timeout     time.Duration
	Context     context.Context
}

type Response[T any] struct {
	Data       T
	StatusCode int
	Headers    http.Header
	RawBody    []byte
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: make(map[string]string),
	}
}

// NewHTTPClientWith uses the given *http.Client, e.g. an httptest server's.
func NewHTTPClientWith(baseURL string, hc *http.Client) *HTTPClient {
	c := NewHTTPClient(baseURL, 0)
	if hc != nil {
		c.client = hc
	}
	return c
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// SetDefaultHeader must be called before the client is shared.
func (c *HTTPClient) SetDefaultHeader(key, value string) {
	c.headers[key] = value
}

// Do performs the request and decodes a JSON body into result when result
// is non-nil. Non-2xx statuses are not errors; callers inspect the decoded
// envelope or use DoWithResponse.
func (c *HTTPClient) Do(opts RequestOptions, result interface{}) (int, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	fullURL, err := c.buildURL(opts.URL, opts.QueryParams)
	if err != nil {
		logger.Error(ctx, "Failed to build URL", slog.Any("error", err))
		return 0, fmt.Errorf("build URL: %w", err)
	}

	var bodyReader io.Reader
	if opts.Body != nil {
		bodyBytes, err := c.encodeBody(opts.Body)
		if err != nil {
			logger.Error(ctx, "Failed to encode body", slog.Any("error", err))
			return 0, fmt.Errorf("encode body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	ctx, span := HttpClientTracer.Start(ctx, "HttpClient "+opts.Method)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", opts.Method),
		attribute.String("http.url", fullURL),
	)

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, fullURL, bodyReader)
	if err != nil {
		logger.Error(ctx, "Failed to create request", slog.Any("error", err))
		return 0, fmt.Errorf("create request: %w", err)
	}

	c.setHeaders(req, opts.Headers)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	if span.SpanContext().IsValid() {
		req.Header.Set("X-Trace-ID", span.SpanContext().TraceID().String())
	}

	logger.Info(ctx, "HttpClient request", logger.LogHTTPRequest(req, "outgoing::request")...)
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		logger.Error(ctx, "Failed to execute request", slog.String("error", err.Error()))
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		logger.Error(ctx, "Failed to read response body", slog.String("error", err.Error()))
		return resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	logger.Info(ctx, "HttpClient response", logger.LogHTTPResponse(req, resp.Header, resp.StatusCode, bytes.NewReader(rawBody), time.Since(start).Milliseconds(), "outgoing::response")...)

	if result == nil {
		return resp.StatusCode, nil
	}

	if respPtr, ok := result.(*Response[interface{}]); ok {
		var data interface{}
		if len(rawBody) > 0 {
			if err := json.Unmarshal(rawBody, &data); err != nil {
				data = string(rawBody)
			}
		}
		respPtr.Data = data
		respPtr.StatusCode = resp.StatusCode
		respPtr.Headers = resp.Header
		respPtr.RawBody = rawBody
		return resp.StatusCode, nil
	}

	if len(rawBody) == 0 {
		return resp.StatusCode, fmt.Errorf("decode response: empty body (status %d)", resp.StatusCode)
	}
	if err := json.Unmarshal(rawBody, result); err != nil {
		if err := c.assignRawBody(result, rawBody); err != nil {
			logger.Error(ctx, "Failed to parse response", slog.Any("error", err))
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *HTTPClient) DoWithResponse(opts RequestOptions) (*Response[interface{}], error) {
	result := &Response[interface{}]{}
	_, err := c.Do(opts, result)
	return result, err
}

func (c *HTTPClient) Get(url string, result interface{}, opts ...RequestOptions) (int, error) {
	reqOpts := RequestOptions{
		Method: http.MethodGet,
		URL:    url,
	}
	if len(opts) > 0 {
		reqOpts = c.mergeOptions(reqOpts, opts[0])
	}
	return c.Do(reqOpts, result)
}

func (c *HTTPClient) GetWithResponse(url string, opts ...RequestOptions) (*Response[interface{}], error) {
	reqOpts := RequestOptions{
		Method: http.MethodGet,
		URL:    url,
	}
	if len(opts) > 0 {
		reqOpts = c.mergeOptions(reqOpts, opts[0])
	}
	return c.DoWithResponse(reqOpts)
}

func (c *HTTPClient) Post(url string, body interface{}, result interface{}, opts ...RequestOptions) (int, error) {
	reqOpts := RequestOptions{
		Method: http.MethodPost,
		URL:    url,
		Body:   body,
	}
	if len(opts) > 0 {
		reqOpts = c.mergeOptions(reqOpts, opts[0])
	}
	return c.Do(reqOpts, result)
}

// ResolveURL joins a relative path onto the base URL by plain concatenation,
// the way product image paths are stored.
func (c *HTTPClient) ResolveURL(path string) string {
	return c.baseURL + path
}

func (c *HTTPClient) buildURL(endpoint string, queryParams map[string]string) (string, error) {
	var fullURL string

	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		fullURL = endpoint
	} else {
		endpoint = strings.TrimLeft(endpoint, "/")
		fullURL = fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	}

	if len(queryParams) > 0 {
		u, err := url.Parse(fullURL)
		if err != nil {
			return "", err
		}

		q := u.Query()
		for k, v := range queryParams {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
		fullURL = u.String()
	}

	return fullURL, nil
}

func (c *HTTPClient) encodeBody(body interface{}) ([]byte, error) {
	switch v := body.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case io.Reader:
		return io.ReadAll(v)
	default:
		return json.Marshal(body)
	}
}

// setHeaders applies defaults, then Content-Type for bodies, then per-request
// headers, which win.
func (c *HTTPClient) setHeaders(req *http.Request, headers map[string]string) {
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	req.Header.Set("Accept", "application/json")
	if req.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
}

func (c *HTTPClient) assignRawBody(data interface{}, rawBody []byte) error {
	switch v := data.(type) {
	case *string:
		*v = string(rawBody)
		return nil
	case *[]byte:
		*v = rawBody
		return nil
	default:
		return fmt.Errorf("cannot assign raw body to type %T", data)
	}
}

func (c *HTTPClient) mergeOptions(base, override RequestOptions) RequestOptions {
	if override.Method != "" {
		base.Method = override.Method
	}
	if override.URL != "" {
		base.URL = override.URL
	}
	if override.Body != nil {
		base.Body = override.Body
	}
	if override.Context != nil {
		base.Context = override.Context
	}
	if override.Timeout > 0 {
		base.Timeout = override.Timeout
	}

	if base.Headers == nil {
		base.Headers = make(map[string]string)
	}
	for k, v := range override.Headers {
		base.Headers[k] = v
	}

	if base.QueryParams == nil {
		base.QueryParams = make(map[string]string)
	}
	for k, v := range override.QueryParams {
		base.QueryParams[k] = v
	}

	return base
}

func (r *Response[T]) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response[T]) IsServerError() bool {
	return r.StatusCode >= 500
}
