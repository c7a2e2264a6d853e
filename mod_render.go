package artemis

import (
	"github.com/artemisgen/artemis/glrt/core"
)

// Renderer is the drawing backend. Uniform writes go to its active program.
type Renderer interface {
	core.UniformWriter
	// Upload makes every asset in assets drawable.
	Upload(assets *AssetServer) error
	BeginFrame(width, height int)
	DrawMesh(mesh, texture AssetId)
	Release()
}

// RenderContext holds the installed backend.
type RenderContext struct {
	Name    RendererName
	Backend Renderer
	width   int
	height  int
}

// RenderModule installs a renderer. Only one may be installed per app.
type RenderModule struct {
	Name    RendererName
	Backend Renderer
}

func (m RenderModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, string(m.Name))
	cmd.AddResources(&RenderContext{Name: m.Name, Backend: m.Backend})

	upload := func(rc *RenderContext, assets *AssetServer) {
		if err := rc.Backend.Upload(assets); err != nil {
			failInit(app, "renderer", err)
		}
	}

	app.UseSystem(
		System(upload).
			InStage(PreRender).
			InState(OnEnter(StateRunning)),
	)
	app.UseSystem(
		System(beginFrameSystem).
			InStage(PreRender).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(drawSystem).
			InStage(Render).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(releaseRenderSystem).
			InStage(PreRender).
			InState(OnEnter(StateClosing)),
	)
	app.Logger().Infof("renderer selected: %s", m.Name)
}

func beginFrameSystem(rc *RenderContext, input *Input, ctx *SceneContext) {
	w, h := input.WindowWidth, input.WindowHeight
	if w <= 0 || h <= 0 {
		w, h = ctx.Camera.Settings.ScreenWidth, ctx.Camera.Settings.ScreenHeight
	}
	rc.width, rc.height = w, h
	rc.Backend.BeginFrame(w, h)
}

// writeObjectUniforms sets the per-draw uniforms for d.
func writeObjectUniforms(w core.UniformWriter, d Drawable) {
	w.SetMat4(core.UniformModel, d.Model)
	w.SetVec3(core.UniformObjectColour, d.Colour)
	w.SetFloat(core.UniformTextureScale, d.TextureScale)
	useTexture := int32(0)
	if d.Texture != "" {
		useTexture = 1
	}
	w.SetInt(core.UniformUseTexture, useTexture)
}

func drawSystem(rc *RenderContext, ctx *SceneContext) {
	for _, d := range ctx.Drawables() {
		writeObjectUniforms(rc.Backend, d)
		rc.Backend.DrawMesh(d.Mesh, d.Texture)
	}
}

func releaseRenderSystem(rc *RenderContext) {
	rc.Backend.Release()
}
