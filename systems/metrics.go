package systems

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/automoto/jeepdrive/physics"
	"github.com/yohamta/donburi"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/automoto/jeepdrive/systems"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics publishes driving stats on the global OTel meter. Without an
// installed provider every instrument is a no-op.
type Metrics struct {
	contacts metric.Int64Counter
	speed    metric.Float64ObservableGauge

	lastSpeed atomic.Uint64 // math.Float64bits
}

func NewMetrics() (*Metrics, error) {
	m := &Metrics{}
	mt := meter()

	var err error
	m.contacts, err = mt.Int64Counter(
		"jeepdrive.collisions",
		metric.WithDescription("Collision-begin events routed to a handler"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collision counter: %w", err)
	}

	m.speed, err = mt.Float64ObservableGauge(
		"jeepdrive.vehicle.speed",
		metric.WithDescription("Absolute vehicle speed"),
		metric.WithUnit("m/s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating speed gauge: %w", err)
	}

	_, err = mt.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveFloat64(m.speed, m.Speed())
			return nil
		},
		m.speed,
	)
	if err != nil {
		return nil, fmt.Errorf("registering speed callback: %w", err)
	}

	return m, nil
}

// ObserveSpeed records the latest speed for the gauge. Subscribe it to
// SpeedChanged.
func (m *Metrics) ObserveSpeed(_ donburi.World, ev SpeedChange) {
	m.lastSpeed.Store(math.Float64bits(math.Abs(ev.Speed)))
}

// Speed returns the last observed absolute speed.
func (m *Metrics) Speed() float64 {
	return math.Float64frombits(m.lastSpeed.Load())
}

// RecordContact is a CollisionHandler counting contacts by tag pair.
func (m *Metrics) RecordContact(_ donburi.World, selfTag, otherTag string, _ physics.Contact) {
	m.contacts.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("self", selfTag),
		attribute.String("other", otherTag),
	))
}

// Watch registers m on the router for the given tags.
func (m *Metrics) Watch(r *CollisionRouter, tags ...string) {
	for _, tag := range tags {
		r.Handle(tag, m.RecordContact)
	}
}
