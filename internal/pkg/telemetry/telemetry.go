// Package telemetry configura o TracerProvider do OpenTelemetry. Sem endpoint OTLP os
// spans continuam sendo criados pelo middleware, mas nada é exportado.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ShutdownFunc descarrega e encerra os exportadores.
type ShutdownFunc func(context.Context) error

// Init registra o TracerProvider global. endpoint vazio devolve um shutdown no-op.
func Init(ctx context.Context, serviceName, environment, endpoint string) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("deployment.environment", environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar resource: %w", err)
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(TrimProtocol(endpoint))}
	if Insecure(endpoint) {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar exportador OTLP: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// Insecure indica se o coletor deve ser acessado sem TLS. Só https:// usa TLS; endpoints
// sem esquema seguem o padrão de coletor local em http.
func Insecure(endpoint string) bool {
	return !strings.HasPrefix(strings.ToLower(endpoint), "https://")
}

// TrimProtocol remove o esquema: o exportador HTTP espera host:porta.
func TrimProtocol(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return strings.TrimPrefix(endpoint, "https://")
}
