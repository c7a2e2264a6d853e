package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LightKind selects which Light fields the shader reads. The numeric value is
// what gets uploaded as Light[i].type.
type LightKind int32

const (
	// LightBulb is an omnidirectional point light; direction and cone are ignored.
	LightBulb LightKind = 0
	// LightDirectional has no position; attenuation and cone are ignored.
	LightDirectional LightKind = 1
	// LightSpot uses every field.
	LightSpot LightKind = 2
)

func (k LightKind) String() string {
	switch k {
	case LightBulb:
		return "bulb"
	case LightDirectional:
		return "directional"
	case LightSpot:
		return "spot"
	}
	return "unknown"
}

// Defaults for a reasonable point/spot light.
const (
	DefaultLinearAttenuation    float32 = 0.09
	DefaultQuadraticAttenuation float32 = 0.032
	DefaultCutOffDegrees        float32 = 12.5
	DefaultOuterCutOffDegrees   float32 = 17.5
)

var (
	DefaultLightDirection = mgl32.Vec3{0, -1, 0}
	DefaultLightAmbient   = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}
)

// Light is one entry of the shader's light array. Fields a kind does not use
// are still kept and uploaded so every array slot has the same layout.
type Light struct {
	kind        LightKind
	position    mgl32.Vec3
	direction   mgl32.Vec3
	colour      mgl32.Vec3
	diffuse     mgl32.Vec3
	ambient     mgl32.Vec4
	attenuation mgl32.Vec3
	intensity   float32
	cutOff      float32
	outerCutOff float32
	enabled     bool
}

// NewLight builds an enabled light. direction is optional and defaults to
// straight down.
func NewLight(kind LightKind, position, colour mgl32.Vec3, intensity float32, direction ...mgl32.Vec3) Light {
	l := Light{
		kind:      kind,
		ambient:   DefaultLightAmbient,
		direction: DefaultLightDirection,
		enabled:   true,
	}
	if len(direction) > 0 {
		l.direction = direction[0]
	}
	l.SetPosition(position)
	l.SetColour(colour)
	l.SetIntensity(intensity)
	l.SetCutOff(DefaultCutOffDegrees, DefaultOuterCutOffDegrees)
	l.SetAttenuation(DefaultLinearAttenuation, DefaultQuadraticAttenuation)
	return l
}

func (l *Light) SetKind(kind LightKind)          { l.kind = kind }
func (l *Light) SetPosition(position mgl32.Vec3) { l.position = position }
func (l *Light) SetDirection(dir mgl32.Vec3)     { l.direction = dir }
func (l *Light) SetColour(colour mgl32.Vec3)     { l.colour = colour }
func (l *Light) SetIntensity(intensity float32)  { l.intensity = intensity }
func (l *Light) SetDiffusion(diffuse mgl32.Vec3) { l.diffuse = diffuse }
func (l *Light) SetAmbient(ambient mgl32.Vec4)   { l.ambient = ambient }
func (l *Light) SetEnabled(enabled bool)         { l.enabled = enabled }

// SetAttenuation sets the linear and quadratic falloff terms. The constant
// term is always 1.
func (l *Light) SetAttenuation(linear, quadratic float32) {
	l.attenuation = mgl32.Vec3{1.0, linear, quadratic}
}

// SetCutOff takes the inner and outer cone half-angles in degrees and stores
// their cosines; the shader compares them against a dot product.
func (l *Light) SetCutOff(innerDegrees, outerDegrees float32) {
	l.cutOff = cosDegrees(innerDegrees)
	l.outerCutOff = cosDegrees(outerDegrees)
}

func cosDegrees(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}

func (l *Light) Kind() LightKind         { return l.kind }
func (l *Light) Position() mgl32.Vec3    { return l.position }
func (l *Light) Direction() mgl32.Vec3   { return l.direction }
func (l *Light) Colour() mgl32.Vec3      { return l.colour }
func (l *Light) Diffusion() mgl32.Vec3   { return l.diffuse }
func (l *Light) Ambient() mgl32.Vec4     { return l.ambient }
func (l *Light) Attenuation() mgl32.Vec3 { return l.attenuation }
func (l *Light) Intensity() float32      { return l.intensity }
func (l *Light) CutOff() float32         { return l.cutOff }
func (l *Light) OuterCutOff() float32    { return l.outerCutOff }
func (l *Light) Enabled() bool           { return l.enabled }
