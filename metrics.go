package artemis

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/artemisgen/artemis"

// FrameMetrics records per-frame timings and light counts.
type FrameMetrics struct {
	frameDuration metric.Float64Histogram
	activeLights  metric.Int64Gauge
	syncedLights  metric.Int64Counter

	frameStart time.Time
}

// NewFrameMetrics creates the instruments on m.
func NewFrameMetrics(m metric.Meter) (*FrameMetrics, error) {
	fm := &FrameMetrics{}
	var err error

	fm.frameDuration, err = m.Float64Histogram(
		"artemis.frame.duration",
		metric.WithDescription("Wall time per frame"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame duration histogram: %w", err)
	}

	fm.activeLights, err = m.Int64Gauge(
		"artemis.lights.active",
		metric.WithDescription("Enabled lights in the registry"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating active lights gauge: %w", err)
	}

	fm.syncedLights, err = m.Int64Counter(
		"artemis.lights.synced",
		metric.WithDescription("Light uniform groups written"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating synced lights counter: %w", err)
	}

	return fm, nil
}

func (fm *FrameMetrics) BeginFrame(now time.Time) {
	fm.frameStart = now
}

func (fm *FrameMetrics) EndFrame(ctx context.Context, now time.Time) {
	if fm.frameStart.IsZero() {
		return
	}
	fm.frameDuration.Record(ctx, now.Sub(fm.frameStart).Seconds())
}

func (fm *FrameMetrics) RecordLights(ctx context.Context, enabled, synced int) {
	fm.activeLights.Record(ctx, int64(enabled))
	fm.syncedLights.Add(ctx, int64(synced))
}

// MetricsModule installs FrameMetrics on the global meter provider, or on
// a no-op meter when disabled.
type MetricsModule struct {
	Enabled bool
	// Meter overrides the meter; mostly for tests.
	Meter metric.Meter
}

func (m MetricsModule) Install(app *App, cmd *Commands) {
	meter := m.Meter
	if meter == nil {
		if m.Enabled {
			meter = otel.Meter(instrumentationName)
		} else {
			meter = noop.Meter{}
		}
	}

	fm, err := NewFrameMetrics(meter)
	if err != nil {
		failInit(app, "metrics", err)
	}
	cmd.AddResources(fm)

	app.UseSystem(
		System(frameBeginSystem).
			InStage(Prelude).
			RunAlways(),
	)
	app.UseSystem(
		System(frameEndSystem).
			InStage(Finale).
			RunAlways(),
	)
}

func frameBeginSystem(fm *FrameMetrics) {
	fm.BeginFrame(time.Now())
}

func frameEndSystem(fm *FrameMetrics) {
	fm.EndFrame(context.Background(), time.Now())
}
