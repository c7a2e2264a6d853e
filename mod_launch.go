package artemis

// LaunchModule handles launch and reset input, keeps the booster lights on
// the nozzles and integrates the flight after the frame is drawn.
type LaunchModule struct{}

func (LaunchModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(launchControlSystem).
			InStage(Update).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(launchLightSystem).
			InStage(PostUpdate).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(launchStepSystem).
			InStage(PostRender).
			InState(OnExecute(StateRunning)),
	)
}

func launchControlSystem(input *Input, ctx *SceneContext, cmd *Commands) {
	if input.JustPressed[KeySpace] {
		if ctx.LaunchRocket() {
			cmd.Logger().Infof("launch from %v", ctx.Launch.Offset())
		}
	}
	if input.JustPressed[KeyR] {
		ctx.Launch.Reset()
		cmd.Logger().Debugf("launch reset")
	}
}

func launchLightSystem(ctx *SceneContext) {
	ctx.RefreshLaunchLights()
}

func launchStepSystem(t *Time, ctx *SceneContext) {
	ctx.Launch.Step(t.Dt)
}
