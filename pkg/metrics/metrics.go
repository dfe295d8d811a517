// Package metrics defines the OpenTelemetry instruments recorded by the bot
// and its background workers. Instruments are created from the meter provider
// owned by the ops HTTP server, which exports them in Prometheus format.
package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Metrics groups the instruments recorded while serving chat commands and
// sending birthday notifications. A nil *Metrics is valid and records nothing,
// which keeps tests and wiring simple.
type Metrics struct {
	commands      metric.Int64Counter
	announcements metric.Int64Counter
	handleSeconds metric.Float64Histogram
}

// New creates the bot's instruments on the given meter.
func New(meter metric.Meter) (*Metrics, error) {
	commands, err := meter.Int64Counter("bot_commands_total",
		metric.WithDescription("Chat commands handled, partitioned by command name and outcome."))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	announcements, err := meter.Int64Counter("bot_birthday_announcements_total",
		metric.WithDescription("Birthday congratulations delivered to chats."))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	handleSeconds, err := meter.Float64Histogram("bot_command_duration_seconds",
		metric.WithDescription("Latency of chat command handlers."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &Metrics{
		commands:      commands,
		announcements: announcements,
		handleSeconds: handleSeconds,
	}, nil
}

// CommandHandled records one handled chat command with its latency.
func (m *Metrics) CommandHandled(ctx context.Context, command string, failed bool, seconds float64) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("command", command),
		attribute.Bool("failed", failed),
	)
	m.commands.Add(ctx, 1, attrs)
	m.handleSeconds.Record(ctx, seconds, metric.WithAttributes(attribute.String("command", command)))
}

// BirthdayAnnounced records one delivered congratulation.
func (m *Metrics) BirthdayAnnounced(ctx context.Context) {
	if m == nil {
		return
	}

	m.announcements.Add(ctx, 1)
}
