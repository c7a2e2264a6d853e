package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/artemisgen/artemis"
)

func init() {
	// GLFW and GL must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	flags := pflag.NewFlagSet("artemis", pflag.ContinueOnError)
	configPath := flags.String("config", "", "config file (default ./artemis.{yaml,json,toml})")
	flags.Bool("dump-uniforms", false, "log every uniform written in the first frame")
	flags.Bool("debug", false, "debug logging")
	flags.Uint64("seed", 0, "scene random seed, 0 for wall clock")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := artemis.LoadConfig(*configPath, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := artemis.NewDefaultLogger("artemis", cfg.Log.Debug)
	if f := cfg.File(); f != "" {
		logger.Infof("config %s", f)
	}

	defer func() {
		if r := recover(); r != nil {
			var ie *artemis.InitError
			if err, ok := r.(error); ok && errors.As(err, &ie) {
				logger.Errorf("startup failed: %v", ie)
				code = 1
				return
			}
			panic(r)
		}
	}()

	app := artemis.NewAppBuilder().
		UseStates(artemis.StateRunning, artemis.StateClosing).
		UseModule(
			artemis.LoggingModule{Logger: logger},
			artemis.ConfigModule{Config: cfg},
			artemis.MetricsModule{Enabled: cfg.Metrics.Enabled},
			artemis.NewPlatformWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync),
			artemis.InputModule{},
			artemis.TimeModule{},
			artemis.AssetServerModule{},
			artemis.SceneModule{},
			artemis.CameraModule{},
			artemis.LauncherTransportModule{},
			artemis.LaunchModule{},
			artemis.VehiclesModule{},
			artemis.UniformSyncModule{DumpFirstFrame: cfg.Debug.DumpUniforms},
		).
		Build().
		UseRenderer(artemis.RendererOpenGL, artemis.NewGLRenderer())

	app.Run()
	logger.Infof("exited after %d frames", app.Frame())
	return 0
}
