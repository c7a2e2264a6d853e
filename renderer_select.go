package artemis

// RendererName identifies a concrete renderer backend; it is also the
// RendererTag name.
type RendererName string

const (
	RendererOpenGL RendererName = "opengl"
)

// UseRenderer installs backend after Build. A second, different renderer
// panics.
func (app *App) UseRenderer(name RendererName, backend Renderer) *App {
	RenderModule{Name: name, Backend: backend}.Install(app, app.Commands())
	return app
}
