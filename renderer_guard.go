package artemis

import "fmt"

// RendererTag records the renderer installed into the App.
type RendererTag struct {
	Name string
}

// ensureSingleRenderer tags app with name, or panics when another renderer
// already holds the tag.
func ensureSingleRenderer(app *App, name string) {
	if tag, ok := ResourceOf[RendererTag](app); ok {
		if tag.Name != name {
			msg := fmt.Sprintf("multiple renderers installed: %s and %s", tag.Name, name)
			app.Logger().Errorf("%s", msg)
			panic(msg)
		}
		return
	}
	app.addResources(&RendererTag{Name: name})
}
