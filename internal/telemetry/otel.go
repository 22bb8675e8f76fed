// Package telemetry configures OpenTelemetry tracing. Spans are exported to
// the Langfuse OTLP endpoint so that HTTP requests, reports and coach replies
// show up next to the Langfuse traces created by the coach.
package telemetry

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/blaisecz/cogni-tracker/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// ServiceVersion is reported as service.version on every span.
const ServiceVersion = "1.0.0"

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Enabled reports whether the configuration carries Langfuse credentials.
func Enabled(cfg *config.Config) bool {
	return cfg.LangfuseBaseURL != "" && cfg.LangfusePublicKey != "" && cfg.LangfuseSecretKey != ""
}

// OTLPEndpoint is the Langfuse OTLP/HTTP traces endpoint for baseURL.
func OTLPEndpoint(baseURL string) string {
	return fmt.Sprintf("%s/api/public/otel/v1/traces", strings.TrimRight(baseURL, "/"))
}

// InitTracer installs the global tracer provider and W3C propagators.
// Without Langfuse credentials the default no-op provider is kept.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string, log *zap.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !Enabled(cfg) {
		log.Info("tracing disabled", zap.String("reason", "langfuse credentials missing"))
		return func(context.Context) error { return nil }, nil
	}

	creds := cfg.LangfusePublicKey + ":" + cfg.LangfuseSecretKey
	auth := base64.StdEncoding.EncodeToString([]byte(creds))

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(OTLPEndpoint(cfg.LangfuseBaseURL)),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": "Basic " + auth,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", ServiceVersion),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing enabled", zap.String("service", serviceName), zap.String("endpoint", OTLPEndpoint(cfg.LangfuseBaseURL)))
	return tp.Shutdown, nil
}
