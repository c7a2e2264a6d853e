package artemis

import (
	"time"

	"github.com/artemisgen/artemis/glrt/core"
)

// Time is the session clock. Dt is the same value for every system in a
// frame.
type Time struct {
	Clock *core.Clock
	Dt    float32
}

type TimeModule struct {
	// Now overrides the wall clock; mostly for tests.
	Now func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	clock := core.NewClock()
	if mod.Now != nil {
		clock = core.NewClockWithSource(mod.Now)
	}
	cmd.AddResources(&Time{Clock: clock})
	app.UseSystem(
		System(timeSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func timeSystem(t *Time) {
	t.Clock.Tick()
	t.Dt = t.Clock.DeltaSeconds()
}
