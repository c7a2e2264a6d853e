package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// LaunchAcceleration is the constant upward acceleration in units/s².
	LaunchAcceleration float32 = 2.0
	// LaunchCeiling is the height above which the rocket is no longer drawn.
	LaunchCeiling float32 = 256.0
)

// LaunchSequence tracks the rocket lift-off. It is idle until Launch and
// returns to idle on Reset.
type LaunchSequence struct {
	launched bool
	offset   mgl32.Vec3
	velocity float32
}

func (s *LaunchSequence) HasLaunched() bool  { return s.launched }
func (s *LaunchSequence) Offset() mgl32.Vec3 { return s.offset }
func (s *LaunchSequence) Velocity() float32  { return s.velocity }

// Launch starts the sequence from origin, the launcher's world position.
// It reports false when already launched.
func (s *LaunchSequence) Launch(origin mgl32.Vec3) bool {
	if s.launched {
		return false
	}
	s.offset = origin
	s.launched = true
	return true
}

// Reset puts the rocket back on the launcher.
func (s *LaunchSequence) Reset() {
	s.offset = mgl32.Vec3{}
	s.velocity = 0
	s.launched = false
}

// Step integrates one frame with semi-implicit Euler: velocity first, then
// height from the updated velocity.
func (s *LaunchSequence) Step(dt float32) {
	if !s.launched {
		return
	}
	s.velocity += dt * LaunchAcceleration
	s.offset[1] += s.velocity * dt
}

// Visible reports whether the rocket is still below the draw ceiling.
func (s *LaunchSequence) Visible() bool {
	return s.offset.Y() <= LaunchCeiling
}

// ModelMatrix is the rocket transform: free-flying once launched, otherwise
// riding on the launcher.
func (s *LaunchSequence) ModelMatrix(launcher mgl32.Mat4) mgl32.Mat4 {
	offset := mgl32.Translate3D(s.offset.X(), s.offset.Y(), s.offset.Z())
	if s.launched {
		return offset
	}
	return launcher.Mul4(offset)
}

// NozzleLightPositions returns the left and right booster nozzle light
// positions for a rocket transform.
func NozzleLightPositions(rocket mgl32.Mat4) (left, right mgl32.Vec3) {
	p := MatrixPosition(rocket)
	left = mgl32.Vec3{p.X() - 0.25, p.Y() + 0.5, p.Z()}
	right = mgl32.Vec3{p.X() + 0.25, p.Y() + 0.5, p.Z()}
	return left, right
}

// MatrixPosition is the translation column of m.
func MatrixPosition(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(3).Vec3()
}
