package artemis

// VehiclesModule moves each headlight to its truck, then drives the trucks.
type VehiclesModule struct{}

func (VehiclesModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(vehicleSystem).
			InStage(PostUpdate).
			InState(OnExecute(StateRunning)),
	)
}

func vehicleSystem(t *Time, ctx *SceneContext) {
	ctx.RefreshHeadlights()
	ctx.DriveVehicles(t.Dt)
}
