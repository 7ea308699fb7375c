// Package telemetry carries failures the portal recovers from silently
// (session fetch, logout, catalog fetch) to logs and metrics.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/thepitchdeck/portal/internal/middleware"
	"github.com/thepitchdeck/portal/internal/pubsub"
)

// Topic is the diagnostics channel.
const Topic = "portal.diagnostics"

// Event describes one recovered failure.
type Event struct {
	Op        string    `json:"op"`
	Error     string    `json:"error"`
	RequestID string    `json:"requestId,omitempty"`
	At        time.Time `json:"at"`
}

// Metrics holds the portal's diagnostic counters.
type Metrics struct {
	Recovered *prometheus.CounterVec
}

// NewMetrics registers the counters with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Recovered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "recovered_failures_total",
			Help:      "Failures hidden from the user and recovered locally, by operation.",
		}, []string{"op"}),
	}
	if err := reg.Register(m.Recovered); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	return m, nil
}

// Reporter publishes recovered failures to the diagnostics channel.
type Reporter struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewReporter creates a Reporter publishing on pub.
func NewReporter(pub pubsub.Publisher) *Reporter {
	return &Reporter{pub: pub, now: time.Now}
}

// Report publishes err for op. It never fails; publishing problems are logged.
func (r *Reporter) Report(ctx context.Context, op string, err error) {
	if err == nil {
		return
	}
	ev := Event{
		Op:        op,
		Error:     err.Error(),
		RequestID: middleware.RequestIDFromContext(ctx),
		At:        r.now().UTC(),
	}
	payload, mErr := json.Marshal(ev)
	if mErr == nil {
		mErr = r.pub.Publish(context.WithoutCancel(ctx), pubsub.Message{
			Topic:     Topic,
			RequestID: ev.RequestID,
			Payload:   payload,
			Metadata:  map[string]string{"op": op},
		})
	}
	if mErr != nil {
		middleware.FromContext(ctx).Error("Failed to publish diagnostic", "op", op, "cause", err, "error", mErr)
	}
}

// Sink consumes the diagnostics channel.
type Sink struct {
	logger  *slog.Logger
	metrics *Metrics
}

// NewSink creates a Sink. metrics may be nil.
func NewSink(logger *slog.Logger, metrics *Metrics) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{logger: logger, metrics: metrics}
}

// Start subscribes the sink to the diagnostics topic.
func (s *Sink) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return sub.Subscribe(ctx, Topic, s.Handle)
}

// Handle logs and counts one diagnostics message.
func (s *Sink) Handle(_ context.Context, msg pubsub.Message) error {
	var ev Event
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return fmt.Errorf("decode diagnostic event: %w", err)
	}
	if ev.Op == "" {
		ev.Op = msg.Meta("op")
	}
	s.logger.Warn("Recovered failure",
		"op", ev.Op,
		"error", ev.Error,
		"request_id", ev.RequestID,
		"at", ev.At,
	)
	if s.metrics != nil {
		s.metrics.Recovered.WithLabelValues(ev.Op).Inc()
	}
	return nil
}
