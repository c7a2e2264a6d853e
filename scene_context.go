package artemis

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/artemisgen/artemis/glrt/core"
)

// SceneContext owns all scene state for one session: the light registry,
// vehicles, launch and transport state, the camera and the handles of the
// lights derived from them. It is populated on entering StateRunning and
// released on entering StateClosing.
type SceneContext struct {
	SessionID uuid.UUID
	Lights    *core.LightRegistry
	Vehicles  []*core.Vehicle
	Launch    core.LaunchSequence
	Transport *core.LauncherTransport
	Camera    *core.Camera
	// SpecularExponent is the shared material shininess.
	SpecularExponent float32

	props         []prop
	vehicleLooks  []vehicleLook
	nozzle        [2]core.LightHandle
	deck          []core.LightHandle
	groundTexture AssetId
	drawables     []Drawable
	loaded        bool
}

type prop struct {
	name         string
	role         PropRole
	mesh         AssetId
	texture      AssetId
	local        mgl32.Mat4
	colour       mgl32.Vec3
	textureScale float32
}

type vehicleLook struct {
	mesh   AssetId
	colour mgl32.Vec3
}

// Drawable is one draw call: a mesh, its transform and material inputs.
type Drawable struct {
	Name         string
	Mesh         AssetId
	Texture      AssetId
	Model        mgl32.Mat4
	Colour       mgl32.Vec3
	TextureScale float32
}

// NewSceneContext starts an empty session with a registry of maxLights
// slots.
func NewSceneContext(maxLights int, camera *core.Camera) *SceneContext {
	return &SceneContext{
		SessionID:        uuid.New(),
		Lights:           core.NewLightRegistryWithCapacity(maxLights),
		Transport:        core.NewLauncherTransport(),
		Camera:           camera,
		SpecularExponent: 32,
	}
}

// Reset replaces ctx with a fresh session, keeping it registered as the
// same resource.
func (ctx *SceneContext) Reset(maxLights int, camera *core.Camera) {
	*ctx = *NewSceneContext(maxLights, camera)
}

func (ctx *SceneContext) Loaded() bool { return ctx.loaded }

// SetGroundTexture selects the texture for textured props spawned after
// this call.
func (ctx *SceneContext) SetGroundTexture(id AssetId) {
	ctx.groundTexture = id
}

// Release drops all session state.
func (ctx *SceneContext) Release() {
	*ctx = SceneContext{SessionID: ctx.SessionID}
}

func (ctx *SceneContext) LauncherModel() mgl32.Mat4 {
	return ctx.Transport.ModelMatrix()
}

func (ctx *SceneContext) RocketModel() mgl32.Mat4 {
	return ctx.Launch.ModelMatrix(ctx.LauncherModel())
}

// LaunchRocket starts the launch from the launcher's current position.
func (ctx *SceneContext) LaunchRocket() bool {
	return ctx.Launch.Launch(core.MatrixPosition(ctx.LauncherModel()))
}

// RefreshLaunchLights puts the booster lights at the nozzles and lights them
// only while launched.
func (ctx *SceneContext) RefreshLaunchLights() {
	left, right := core.NozzleLightPositions(ctx.RocketModel())
	launched := ctx.Launch.HasLaunched()
	for i, pos := range [2]mgl32.Vec3{left, right} {
		if ctx.nozzle[i].IsZero() {
			continue
		}
		l := ctx.Lights.Get(ctx.nozzle[i])
		l.SetPosition(pos)
		l.SetEnabled(launched)
	}
}

// RefreshDeckLights stacks the deck lights on the launcher.
func (ctx *SceneContext) RefreshDeckLights() {
	positions := core.DeckLightPositions(ctx.LauncherModel())
	for i, h := range ctx.deck {
		if i >= len(positions) {
			break
		}
		ctx.Lights.Get(h).SetPosition(positions[i])
	}
}

// RefreshHeadlights moves each headlight to its truck's current pose. Call
// before DriveVehicles so the light trails the truck by one frame.
func (ctx *SceneContext) RefreshHeadlights() {
	for _, v := range ctx.Vehicles {
		l := ctx.Lights.Get(v.Headlight)
		l.SetPosition(v.HeadlightPosition())
		l.SetDirection(v.Direction)
	}
}

func (ctx *SceneContext) DriveVehicles(dt float32) {
	for _, v := range ctx.Vehicles {
		v.Drive(dt)
	}
}

func (ctx *SceneContext) FrameUniforms() core.FrameUniforms {
	return core.FrameUniforms{
		View:             ctx.Camera.ViewMatrix(),
		Projection:       ctx.Camera.ProjectionMatrix(),
		EyePos:           ctx.Camera.Position,
		SpecularExponent: ctx.SpecularExponent,
	}
}

// Drawables lists this frame's draw calls. The slice is reused across
// calls. A released context draws nothing.
func (ctx *SceneContext) Drawables() []Drawable {
	ctx.drawables = ctx.drawables[:0]
	if !ctx.loaded {
		return nil
	}
	launcher := ctx.LauncherModel()

	for _, p := range ctx.props {
		var model mgl32.Mat4
		switch p.role {
		case PropLauncher:
			model = launcher.Mul4(p.local)
		case PropRocket:
			if !ctx.Launch.Visible() {
				continue
			}
			model = ctx.Launch.ModelMatrix(launcher).Mul4(p.local)
		default:
			model = p.local
		}
		ctx.drawables = append(ctx.drawables, Drawable{
			Name:         p.name,
			Mesh:         p.mesh,
			Texture:      p.texture,
			Model:        model,
			Colour:       p.colour,
			TextureScale: p.textureScale,
		})
	}

	for i, v := range ctx.Vehicles {
		look := ctx.vehicleLooks[i]
		ctx.drawables = append(ctx.drawables, Drawable{
			Name:         "truck",
			Mesh:         look.mesh,
			Model:        v.ModelMatrix(),
			Colour:       look.colour,
			TextureScale: 1,
		})
	}
	return ctx.drawables
}
