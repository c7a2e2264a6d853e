package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClock_FirstTickIsZero(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	clock := NewClockWithSource(ft.now)

	assert.Equal(t, float32(0), clock.DeltaSeconds(), "delta before any tick")

	ft.advance(5 * time.Second)
	clock.Tick()
	assert.Equal(t, float32(0), clock.DeltaSeconds(), "first tick after construction")
	assert.Equal(t, float64(0), clock.AverageFPS())
}

func TestClock_DeltaBetweenTicks(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	clock := NewClockWithSource(ft.now)
	clock.Tick()

	ft.advance(250 * time.Millisecond)
	clock.Tick()
	assert.InDelta(t, 0.25, clock.DeltaSeconds(), 1e-6)
	assert.Equal(t, 250*time.Millisecond, clock.Delta())

	ft.advance(0)
	clock.Tick()
	assert.Equal(t, float32(0), clock.DeltaSeconds())
}

func TestClock_NeverNegative(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	clock := NewClockWithSource(ft.now)
	clock.Tick()

	ft.advance(-time.Second)
	clock.Tick()
	assert.Equal(t, float32(0), clock.DeltaSeconds())
}

func TestClock_BackwardsStepKeepsLaterReference(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	clock := NewClockWithSource(ft.now)
	clock.Tick()

	ft.advance(-time.Second)
	clock.Tick()
	assert.Equal(t, float32(0), clock.DeltaSeconds())

	// 0.5s past the last forward tick, not 1.5s past the rewound one.
	ft.advance(1500 * time.Millisecond)
	clock.Tick()
	assert.InDelta(t, 0.5, clock.DeltaSeconds(), 1e-6)
	assert.InDelta(t, 2.0, clock.AverageFPS(), 1e-6)
}

func TestClock_AverageFPS(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	clock := NewClockWithSource(ft.now)
	clock.Tick()

	for i := 0; i < 10; i++ {
		ft.advance(20 * time.Millisecond)
		clock.Tick()
	}
	assert.InDelta(t, 50.0, clock.AverageFPS(), 1e-6)

	// Older samples roll out of the window.
	for i := 0; i < fpsWindow; i++ {
		ft.advance(10 * time.Millisecond)
		clock.Tick()
	}
	assert.InDelta(t, 100.0, clock.AverageFPS(), 1e-6)
}
