package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads GL function pointers for the current context and sets the fixed
// pipeline state the scene relies on.
func Init() (version string, err error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("gl init: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func Clear(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
