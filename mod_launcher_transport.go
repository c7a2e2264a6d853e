package artemis

import (
	"github.com/artemisgen/artemis/glrt/core"
)

// LauncherTransportModule drives the mobile launcher with the arrow keys
// and keeps the deck lights on it.
type LauncherTransportModule struct{}

func (LauncherTransportModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(transportControlSystem).
			InStage(Update).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(deckLightSystem).
			InStage(PostUpdate).
			InState(OnExecute(StateRunning)),
	)
}

func transportControls(input *Input) core.TransportControls {
	return core.TransportControls{
		Forward:  input.Pressed[KeyUp],
		Backward: input.Pressed[KeyDown],
		Left:     input.Pressed[KeyLeft],
		Right:    input.Pressed[KeyRight],
	}
}

func transportControlSystem(input *Input, t *Time, ctx *SceneContext) {
	ctx.Transport.Update(transportControls(input), t.Dt)
}

func deckLightSystem(ctx *SceneContext) {
	ctx.RefreshDeckLights()
}
