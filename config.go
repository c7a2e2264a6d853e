package artemis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/artemisgen/artemis/glrt/core"
)

const (
	configName = "artemis"
	envPrefix  = "ARTEMIS"
)

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	VSync  bool   `mapstructure:"vsync"`
}

type CameraConfig struct {
	Near     float32   `mapstructure:"near"`
	Far      float32   `mapstructure:"far"`
	Fov      float32   `mapstructure:"fov"`
	Position []float32 `mapstructure:"position"`
}

type SceneConfig struct {
	// Seed 0 seeds from the wall clock.
	Seed        uint64 `mapstructure:"seed"`
	MinVehicles int    `mapstructure:"minVehicles"`
	MaxVehicles int    `mapstructure:"maxVehicles"`
}

type LightingConfig struct {
	MaxLights int `mapstructure:"maxLights"`
}

type MaterialConfig struct {
	SpecularExponent float32 `mapstructure:"specularExponent"`
}

type AssetsConfig struct {
	GroundTexture string `mapstructure:"groundTexture"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DebugConfig struct {
	DumpUniforms bool `mapstructure:"dumpUniforms"`
}

// Config is the resolved application configuration.
type Config struct {
	Window   WindowConfig   `mapstructure:"window"`
	Camera   CameraConfig   `mapstructure:"camera"`
	Scene    SceneConfig    `mapstructure:"scene"`
	Lighting LightingConfig `mapstructure:"lighting"`
	Material MaterialConfig `mapstructure:"material"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Debug    DebugConfig    `mapstructure:"debug"`

	file string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Artemis Generation")
	v.SetDefault("window.vsync", true)

	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 1000.0)
	v.SetDefault("camera.fov", 45.0)
	v.SetDefault("camera.position", []float32{0, 5, 12})

	v.SetDefault("scene.seed", 0)
	v.SetDefault("scene.minVehicles", 5)
	v.SetDefault("scene.maxVehicles", 14)

	v.SetDefault("lighting.maxLights", core.MaxLights)
	v.SetDefault("material.specularExponent", 32.0)
	v.SetDefault("assets.groundTexture", "")
	v.SetDefault("log.debug", false)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("debug.dumpUniforms", false)
}

// DefaultConfig is the configuration with no file and no environment.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		panic(fmt.Errorf("default config: %w", err))
	}
	return cfg
}

// flagKeys binds command-line flags to config keys. Flags win over every
// other source when set.
var flagKeys = map[string]string{
	"dump-uniforms": "debug.dumpUniforms",
	"debug":         "log.debug",
	"seed":          "scene.seed",
}

// LoadConfig reads defaults, then the config file, then ARTEMIS_* environment
// variables, then flags. An empty path searches the working directory for
// artemis.{yaml,json,toml} and tolerates its absence; an explicit path must
// exist. flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.file = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// File is the config file that was read, or "" when running on defaults.
func (c *Config) File() string {
	return c.file
}

var ErrInvalidConfig = errors.New("invalid config")

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height))
	}
	if c.Lighting.MaxLights < 1 || c.Lighting.MaxLights > core.MaxLights {
		errs = append(errs, fmt.Errorf("%w: lighting.maxLights %d outside 1..%d", ErrInvalidConfig, c.Lighting.MaxLights, core.MaxLights))
	}
	if c.Scene.MinVehicles < 0 || c.Scene.MinVehicles > c.Scene.MaxVehicles {
		errs = append(errs, fmt.Errorf("%w: vehicles %d..%d", ErrInvalidConfig, c.Scene.MinVehicles, c.Scene.MaxVehicles))
	}
	if len(c.Camera.Position) != 3 {
		errs = append(errs, fmt.Errorf("%w: camera.position needs 3 components, got %d", ErrInvalidConfig, len(c.Camera.Position)))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("%w: camera planes %g..%g", ErrInvalidConfig, c.Camera.Near, c.Camera.Far))
	}
	return errors.Join(errs...)
}

// CameraPosition returns camera.position as a vector.
func (c *Config) CameraPosition() mgl32.Vec3 {
	if len(c.Camera.Position) != 3 {
		return mgl32.Vec3{0, 5, 12}
	}
	return mgl32.Vec3{c.Camera.Position[0], c.Camera.Position[1], c.Camera.Position[2]}
}

func (c *Config) CameraSettings() core.CameraSettings {
	return core.CameraSettings{
		ScreenWidth:  c.Window.Width,
		ScreenHeight: c.Window.Height,
		NearPlane:    c.Camera.Near,
		FarPlane:     c.Camera.Far,
	}
}

// ConfigModule makes the config available to systems.
type ConfigModule struct {
	Config *Config
}

func (m ConfigModule) Install(app *App, cmd *Commands) {
	cfg := m.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cmd.AddResources(cfg)
}
