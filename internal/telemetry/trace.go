// Package telemetry 提供 OpenTelemetry 链路追踪。未配置导出地址时使用 noop 实现。
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentName = "github.com/zhouzirui/museum-guide/backend"

// Tracer 是全局 tracer，Start 成功后替换为真实实现。
var Tracer trace.Tracer = noop.NewTracerProvider().Tracer(instrumentName)

// Config 描述导出配置。
type Config struct {
	// Endpoint 形如 "localhost:4318"，为空时不启用追踪。
	Endpoint    string
	Insecure    bool
	ServiceName string
}

// Enabled reports whether an exporter endpoint is configured.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// Start installs an OTLP/HTTP tracer provider. The returned func flushes and
// shuts it down. When cfg is disabled it is a no-op.
func Start(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if !cfg.Enabled() {
		return func(context.Context) error { return nil }, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "museum-guide"
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	SetTracerProvider(provider)

	return func(ctx context.Context) error {
		if err := provider.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown tracer provider: %w", err)
		}
		return nil
	}, nil
}

// SetTracerProvider 替换全局 provider，测试中用于注入内存导出器。
func SetTracerProvider(tp trace.TracerProvider) {
	otel.SetTracerProvider(tp)
	Tracer = tp.Tracer(instrumentName)
}
