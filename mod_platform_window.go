package artemis

// PlatformWindowModule ensures a single shared GLFW window (WindowState) with
// a current GL context is created and made available as a resource.
// Install is idempotent: if a WindowState resource already exists, it is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// NewPlatformWindow creates a module that provides a shared WindowState resource.
// If Width/Height are zero, sensible defaults are used.
func NewPlatformWindow(width, height int, title string, vsync bool) *PlatformWindowModule {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	if title == "" {
		title = "Artemis Generation"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
		VSync:  vsync,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if _, ok := ResourceOf[WindowState](app); !ok {
		ws, err := createWindowState(m.Width, m.Height, m.Title, m.VSync)
		if err != nil {
			failInit(app, "window", err)
		}
		app.addResources(ws)
		app.Logger().Infof("window %dx%d '%s' on OpenGL %s", ws.WindowWidth, ws.WindowHeight, ws.windowTitle, ws.glVersion)
	}

	app.UseSystem(
		System(closeRequestSystem).
			InStage(Update).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(windowTitleSystem).
			InStage(PostRender).
			RunAlways(),
	)
	app.UseSystem(
		System(presentSystem).
			InStage(Finale).
			RunAlways(),
	)
	app.UseSystem(
		System(destroyWindowSystem).
			InStage(Finale).
			InState(OnExit(StateClosing)),
	)
}

// closeRequested reports whether the session should end this frame.
func closeRequested(input *Input, windowClosing bool) bool {
	return windowClosing || input.JustPressed[KeyEscape]
}

func closeRequestSystem(s *WindowState, input *Input, cmd *Commands) {
	if closeRequested(input, s.ShouldClose()) {
		cmd.Logger().Infof("closing")
		cmd.ChangeState(StateClosing)
	}
}

func windowTitleSystem(s *WindowState, t *Time) {
	s.windowGlfw.SetTitle(FormatTitle(s.windowTitle, t.Clock.AverageFPS()))
}

func presentSystem(s *WindowState) {
	if s.windowGlfw != nil {
		s.swap()
	}
}

func destroyWindowSystem(s *WindowState) {
	s.destroy()
}
