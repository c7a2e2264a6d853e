package artemis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewFrameMetrics(t *testing.T) {
	fm, err := NewFrameMetrics(noop.Meter{})
	require.NoError(t, err)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		fm.EndFrame(ctx, time.Now())
		fm.BeginFrame(time.Now())
		fm.EndFrame(ctx, time.Now())
		fm.RecordLights(ctx, 7, 9)
	})
}

func TestMetricsModule(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		app := NewAppBuilder().UseModule(MetricsModule{Enabled: enabled}).Build()
		fm, ok := ResourceOf[FrameMetrics](app)
		require.True(t, ok)

		app.step()
		assert.False(t, fm.frameStart.IsZero(), "frame begin runs in every state")
	}
}
