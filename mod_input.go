package artemis

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Keys and buttons read by the session controls.
const (
	KeyA int = iota
	KeyD
	KeyR
	KeyS
	KeyW
	KeySpace
	KeyEscape
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

type InputModule struct{}

type Input struct {
	Pressed [256]bool

	JustPressed  [256]bool
	JustReleased [256]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	MouseCaptured            bool
	// ScrollY is the wheel movement since the previous poll.
	ScrollY float64

	WindowWidth, WindowHeight int

	scrollAccum float64
	hooked      bool
	mouseSeen   bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(Prelude).
			RunAlways(),
	)
}

// SetButton records the current up/down state of key and derives the edge
// flags against the previous poll.
func (input *Input) SetButton(key int, down bool) {
	input.JustPressed[key] = false
	input.JustReleased[key] = false

	if down {
		if !input.Pressed[key] {
			input.JustPressed[key] = true
		}
		input.Pressed[key] = true
	} else {
		if input.Pressed[key] {
			input.JustReleased[key] = true
		}
		input.Pressed[key] = false
	}
}

// SetCursor moves the cursor. The first position seen yields no delta.
func (input *Input) SetCursor(x, y float64) {
	if input.mouseSeen {
		input.MouseDeltaX = x - input.MouseX
		input.MouseDeltaY = y - input.MouseY
	}
	input.MouseX, input.MouseY = x, y
	input.mouseSeen = true
}

func inputSystem(s *WindowState, input *Input) {
	if !input.hooked {
		s.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
			input.scrollAccum += yoff
		})
		input.hooked = true
	}

	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.SetButton(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}

	for btn, glfwBtn := range mouseToGlfw {
		input.SetButton(btn, s.windowGlfw.GetMouseButton(glfwBtn) == glfw.Press)
	}

	input.MouseDeltaX, input.MouseDeltaY = 0, 0
	input.SetCursor(s.windowGlfw.GetCursorPos())

	input.ScrollY = input.scrollAccum
	input.scrollAccum = 0

	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetFramebufferSize()

	if input.MouseCaptured {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

var mouseToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}

var keyToGlfw = map[int]glfw.Key{
	KeyA:      glfw.KeyA,
	KeyD:      glfw.KeyD,
	KeyR:      glfw.KeyR,
	KeyS:      glfw.KeyS,
	KeyW:      glfw.KeyW,
	KeySpace:  glfw.KeySpace,
	KeyEscape: glfw.KeyEscape,
	KeyRight:  glfw.KeyRight,
	KeyLeft:   glfw.KeyLeft,
	KeyDown:   glfw.KeyDown,
	KeyUp:     glfw.KeyUp,
}
