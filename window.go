package artemis

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/artemisgen/artemis/glrt/gpu"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
	glVersion    string
}

// createWindowState opens a window with a current OpenGL 4.1 core context.
// The caller must hold the main OS thread.
func createWindowState(width, height int, title string, vsync bool) (*WindowState, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	version, err := gpu.Init()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	fbw, fbh := win.GetFramebufferSize()
	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  fbw,
		WindowHeight: fbh,
		windowTitle:  title,
		glVersion:    version,
	}, nil
}

func (s *WindowState) Title() string { return s.windowTitle }

func (s *WindowState) ShouldClose() bool {
	return s.windowGlfw != nil && s.windowGlfw.ShouldClose()
}

func (s *WindowState) swap() {
	s.windowGlfw.SwapBuffers()
}

func (s *WindowState) destroy() {
	if s.windowGlfw == nil {
		return
	}
	s.windowGlfw.Destroy()
	s.windowGlfw = nil
	glfw.Terminate()
}

// FormatTitle is the window caption with the rolling average frame rate.
func FormatTitle(title string, avgFPS float64) string {
	return fmt.Sprintf("%s (Avg FPS: %d)", title, int(avgFPS))
}
