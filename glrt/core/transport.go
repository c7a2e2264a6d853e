package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	TransportSpeed     float32 = 3.0
	TransportTurnSpeed float32 = 100.0
)

var DefaultTransportPosition = mgl32.Vec3{-1.23, 0, -4}

// TransportControls is the per-frame driver input for the mobile launcher.
type TransportControls struct {
	Forward, Backward bool
	Left, Right       bool
}

// LauncherTransport is the mobile launcher crawler. Input moves it directly;
// there is no physics.
type LauncherTransport struct {
	Position mgl32.Vec3
	// Heading in degrees.
	Heading float32
}

func NewLauncherTransport() *LauncherTransport {
	return &LauncherTransport{Position: DefaultTransportPosition}
}

// Forward is the unit vector the launcher faces.
func (t *LauncherTransport) Forward() mgl32.Vec3 {
	rad := float64(mgl32.DegToRad(t.Heading))
	return mgl32.Vec3{float32(math.Sin(rad)), 0, float32(-math.Cos(rad))}
}

func (t *LauncherTransport) Update(c TransportControls, dt float32) {
	fwd := t.Forward()
	step := TransportSpeed * dt

	if c.Forward {
		t.Position[0] += fwd.X() * step
		t.Position[2] += fwd.Z() * step
	}
	if c.Backward {
		t.Position[0] -= fwd.X() * step
		t.Position[2] -= fwd.Z() * step
	}
	if c.Left {
		t.Heading -= dt * TransportTurnSpeed
	}
	if c.Right {
		t.Heading += dt * TransportTurnSpeed
	}
}

func (t *LauncherTransport) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-t.Heading)))
}

// DeckLightHeights are the heights of the three deck lights above the
// launcher origin.
var DeckLightHeights = [3]float32{0.45, 2.25, 4.5}

// DeckLightPositions places the deck lights for a launcher transform.
func DeckLightPositions(launcher mgl32.Mat4) [3]mgl32.Vec3 {
	p := MatrixPosition(launcher)
	var out [3]mgl32.Vec3
	for i, h := range DeckLightHeights {
		out[i] = mgl32.Vec3{p.X(), p.Y() + h, p.Z()}
	}
	return out
}
