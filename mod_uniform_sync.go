package artemis

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/artemisgen/artemis/glrt/core"
)

// UniformSync runs between PreRender and Render: the program is bound and
// nothing has been drawn yet.
var UniformSync = Stage{Name: "UniformSync"}

// UniformSyncModule pushes camera, material and every light to the shader
// once per frame. With DumpFirstFrame the first frame's writes are logged.
type UniformSyncModule struct {
	DumpFirstFrame bool
}

func (m UniformSyncModule) Install(app *App, cmd *Commands) {
	app.UseStage(UniformSync, AfterStage(PreRender))

	dumped := !m.DumpFirstFrame
	sync := func(rc *RenderContext, ctx *SceneContext, fm *FrameMetrics, cmd *Commands) {
		var w core.UniformWriter = rc.Backend
		var rec *core.UniformRecorder
		if !dumped {
			rec = &core.UniformRecorder{}
			w = teeWriter{rc.Backend, rec}
		}

		syncUniforms(w, ctx)
		fm.RecordLights(context.Background(), ctx.Lights.EnabledCount(), ctx.Lights.Len())

		if rec != nil {
			dumped = true
			dumpUniforms(cmd.Logger(), rec)
		}
	}

	app.UseSystem(
		System(sync).
			InStage(UniformSync).
			InState(OnExecute(StateRunning)),
	)
}

func syncUniforms(w core.UniformWriter, ctx *SceneContext) {
	core.SyncFrame(w, ctx.FrameUniforms())
	core.SyncLights(w, ctx.Lights)
}

func dumpUniforms(l Logger, rec *core.UniformRecorder) {
	l.Infof("uniform dump: %d writes", len(rec.Writes))
	for _, u := range rec.Writes {
		l.Infof("  %s", u)
	}
}

// teeWriter forwards every write to both writers.
type teeWriter struct {
	a, b core.UniformWriter
}

func (t teeWriter) SetInt(name string, v int32) {
	t.a.SetInt(name, v)
	t.b.SetInt(name, v)
}

func (t teeWriter) SetFloat(name string, v float32) {
	t.a.SetFloat(name, v)
	t.b.SetFloat(name, v)
}

func (t teeWriter) SetVec3(name string, v mgl32.Vec3) {
	t.a.SetVec3(name, v)
	t.b.SetVec3(name, v)
}

func (t teeWriter) SetVec4(name string, v mgl32.Vec4) {
	t.a.SetVec4(name, v)
	t.b.SetVec4(name, v)
}

func (t teeWriter) SetMat4(name string, v mgl32.Mat4) {
	t.a.SetMat4(name, v)
	t.b.SetMat4(name, v)
}
