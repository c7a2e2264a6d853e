package artemis

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/artemisgen/artemis/glrt/core"
)

// SceneModule owns the SceneContext resource. The scene is loaded on
// entering StateRunning and released on entering StateClosing.
type SceneModule struct {
	// Def overrides the launch-site scene.
	Def *SceneDef
	// Rand overrides the seeded generator; mostly for tests.
	Rand core.Rand
}

func (m SceneModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&SceneContext{})

	load := func(ctx *SceneContext, assets *AssetServer, cfg *Config, cmd *Commands) {
		rng := m.Rand
		if rng == nil {
			rng = newSceneRand(cfg.Scene.Seed)
		}
		def := ArtemisScene(cfg.Scene.MinVehicles, cfg.Scene.MaxVehicles)
		if m.Def != nil {
			def = *m.Def
		}
		if err := loadSession(ctx, assets, cfg, def, rng); err != nil {
			failInit(app, "scene", err)
		}
		cmd.Logger().Infof("session %s: %d lights, %d vehicles", ctx.SessionID, ctx.Lights.Len(), len(ctx.Vehicles))
	}

	app.UseSystem(
		System(load).
			InStage(PreUpdate).
			InState(OnEnter(StateRunning)),
	)
	app.UseSystem(
		System(sceneReleaseSystem).
			InStage(PreUpdate).
			InState(OnEnter(StateClosing)),
	)
}

func newSceneRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// loadSession starts a fresh session in ctx from cfg and def.
func loadSession(ctx *SceneContext, assets *AssetServer, cfg *Config, def SceneDef, rng core.Rand) error {
	camera := core.NewCamera(cfg.CameraSettings(), cfg.CameraPosition())
	camera.Zoom = cfg.Camera.Fov
	ctx.Reset(cfg.Lighting.MaxLights, camera)
	ctx.SpecularExponent = cfg.Material.SpecularExponent

	ground, err := groundTexture(assets, cfg.Assets.GroundTexture)
	if err != nil {
		return err
	}
	ctx.SetGroundTexture(ground)

	return LoadScene(ctx, assets, def, rng)
}

// groundTexture loads path, or generates a grass-toned checkerboard when no
// path is configured.
func groundTexture(assets *AssetServer, path string) (AssetId, error) {
	if path == "" {
		return assets.CheckerTexture(256,
			color.RGBA{R: 200, G: 215, B: 190, A: 255},
			color.RGBA{R: 170, G: 190, B: 160, A: 255},
		), nil
	}
	return assets.LoadTexture(path)
}

func sceneReleaseSystem(ctx *SceneContext, cmd *Commands) {
	cmd.Logger().Infof("session %s released", ctx.SessionID)
	ctx.Release()
}
