// Package telemetry installs the OpenTelemetry meter provider that the match
// runner records round metrics into. Without it the global provider is a no-op.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// DefaultInterval is how often metrics are exported while a session runs.
const DefaultInterval = 10 * time.Second

// Config holds telemetry configuration.
type Config struct {
	ServiceName string
	Writer      io.Writer     // Destination of the exported metrics (required)
	Interval    time.Duration // Export period; 0 uses DefaultInterval
}

// Provider owns the SDK meter provider and its exporter.
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
}

// New creates a provider exporting to cfg.Writer as JSON.
func New(cfg Config) (*Provider, error) {
	if cfg.Writer == nil {
		return nil, errors.New("telemetry: no metrics writer configured")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create resource: %w", err)
	}

	exporter, err := stdoutmetric.New(
		stdoutmetric.WithWriter(cfg.Writer),
		stdoutmetric.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(cfg.Interval),
		)),
	)
	return &Provider{meterProvider: mp}, nil
}

// MeterProvider returns the SDK meter provider.
func (p *Provider) MeterProvider() metric.MeterProvider {
	return p.meterProvider
}

// Install makes the provider the process-wide OTel meter provider.
func (p *Provider) Install() {
	otel.SetMeterProvider(p.meterProvider)
}

// Shutdown exports what is pending and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry: shutdown: %w", err)
	}
	return nil
}
