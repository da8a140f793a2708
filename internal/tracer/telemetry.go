package tracer

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"storefront/internal/config"
	"storefront/internal/logger"

	otelpyroscope "github.com/grafana/otel-profiling-go"
	"github.com/grafana/pyroscope-go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

var (
	once         sync.Once
	shutdownFunc = func() {}
	initErr      error
)

var pyroLogrus = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	l.SetOutput(os.Stderr)
	return l
}()

// Exporter picks the span exporter for cfg: OTLP/gRPC when a collector is
// configured, stdout when TRACE_STDOUT is set, otherwise nil.
func Exporter(ctx context.Context, cfg *config.Config, stdout io.Writer) (trace.SpanExporter, error) {
	switch {
	case cfg.RemoteTraceRpcURI != "":
		return otlptracegrpc.New(ctx,
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithEndpoint(cfg.RemoteTraceRpcURI),
			otlptracegrpc.WithCompressor("gzip"),
		)
	case cfg.TraceStdout:
		return stdouttrace.New(stdouttrace.WithWriter(stdout), stdouttrace.WithPrettyPrint())
	default:
		return nil, nil
	}
}

// Instance installs the global tracer provider and propagators once, and
// starts the profiler when REMOTE_PROFILING_HTTP_URI is set. The returned
// func flushes and stops both.
func Instance(globalCtx context.Context, cfg *config.Config) (func(), error) {
	once.Do(func() {
		log := logger.Instance()

		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))

		exp, err := Exporter(globalCtx, cfg, os.Stderr)
		if err != nil {
			log.Error("Failed to create trace exporter", slog.String("error", err.Error()))
			initErr = err
			return
		}

		res, err := resource.New(globalCtx,
			resource.WithAttributes(
				semconv.ServiceNameKey.String(cfg.AppName),
				attribute.String("api_url", cfg.APIURL),
			),
		)
		if err != nil {
			log.Error("Failed to create resource", slog.String("error", err.Error()))
			initErr = err
			return
		}

		opts := []trace.TracerProviderOption{trace.WithResource(res)}
		if exp != nil {
			opts = append(opts, trace.WithBatcher(exp))
		}
		tp := trace.NewTracerProvider(opts...)

		var profiler *pyroscope.Profiler
		if cfg.RemoteProfilingHttpURI != "" {
			otel.SetTracerProvider(otelpyroscope.NewTracerProvider(tp))
			profiler, err = pyroscope.Start(pyroscope.Config{
				ApplicationName: cfg.AppName,
				ServerAddress:   cfg.RemoteProfilingHttpURI,
				Logger:          pyroLogrus,
			})
			if err != nil {
				log.Error("Pyroscope failed to start", slog.String("error", err.Error()))
			} else {
				log.Info("Pyroscope started successfully")
			}
		} else {
			otel.SetTracerProvider(tp)
		}

		log.Info("OpenTelemetry Tracer initialized", slog.Bool("exporting", exp != nil))

		shutdownFunc = func() {
			if profiler != nil {
				if err := profiler.Stop(); err != nil {
					log.Error("Error stopping profiler", slog.String("error", err.Error()))
				}
			}
			if err := tp.Shutdown(globalCtx); err != nil {
				log.Error("Error shutting down tracer provider", slog.String("error", err.Error()))
			}
		}
	})

	return shutdownFunc, initErr
}
