// Package traces wires OpenTelemetry tracing for the ledger service.
package traces

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/rs/zerolog"
)

const tracerName = "pod-seller-ledger"

// Init installs a global tracer provider exporting over OTLP/gRPC.
// An empty endpoint leaves the no-op provider in place.
// The returned function flushes and stops the provider.
func Init(ctx context.Context, otlpEndpoint, version string, log zerolog.Logger) (func(context.Context) error, error) {
	if otlpEndpoint == "" {
		log.Info().Msg("tracing disabled (no otlp endpoint configured)")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(otlpEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(tracerName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Info().Str("endpoint", otlpEndpoint).Msg("tracing enabled")
	return tp.Shutdown, nil
}

// StartSpan starts a span from the global tracer.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name)
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
	return ctx, span
}

// End records err on the span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// SellerID tags a span with the seller whose wallet or advance is touched.
func SellerID(id string) attribute.KeyValue {
	return attribute.String("seller.id", id)
}

// AdvanceID tags a span with the advance id.
func AdvanceID(id string) attribute.KeyValue {
	return attribute.String("advance.id", id)
}

// ActorID tags a span with the authenticated caller.
func ActorID(id string) attribute.KeyValue {
	return attribute.String("actor.id", id)
}

// Amount tags a span with a decimal amount in its string form.
func Amount(amount string) attribute.KeyValue {
	return attribute.String("amount", amount)
}

// TxnType tags a span with the wallet transaction type.
func TxnType(t string) attribute.KeyValue {
	return attribute.String("wallet.txn_type", t)
}
