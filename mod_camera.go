package artemis

import (
	"github.com/artemisgen/artemis/glrt/core"
)

// cameraKeySpeed scales dt into world units for WASD.
const cameraKeySpeed = 4

// CameraModule flies the scene camera: WASD moves, left-drag looks, the
// wheel zooms. The projection follows the framebuffer size.
type CameraModule struct{}

func (CameraModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(cameraControlSystem).
			InStage(Update).
			InState(OnExecute(StateRunning)),
	)
}

var cameraKeys = []struct {
	key int
	dir core.CameraMovement
}{
	{KeyW, core.CameraForward},
	{KeyS, core.CameraBackward},
	{KeyA, core.CameraLeft},
	{KeyD, core.CameraRight},
}

func cameraControlSystem(input *Input, t *Time, ctx *SceneContext) {
	cam := ctx.Camera

	for _, k := range cameraKeys {
		if input.Pressed[k.key] {
			cam.ProcessKeyboard(k.dir, t.Dt*cameraKeySpeed)
		}
	}

	if input.Pressed[MouseButtonLeft] {
		// screen y grows downwards
		cam.ProcessMouseMovement(input.MouseDeltaX, -input.MouseDeltaY)
	}
	if input.ScrollY != 0 {
		cam.ProcessMouseScroll(input.ScrollY)
	}

	if input.WindowWidth > 0 && input.WindowHeight > 0 &&
		(input.WindowWidth != cam.Settings.ScreenWidth || input.WindowHeight != cam.Settings.ScreenHeight) {
		cam.UpdateScreenSize(input.WindowWidth, input.WindowHeight)
	}
}
