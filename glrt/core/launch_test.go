package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLaunchSequence_IdleDoesNotMove(t *testing.T) {
	var s LaunchSequence
	s.Step(0.5)

	assert.False(t, s.HasLaunched())
	assert.Equal(t, mgl32.Vec3{}, s.Offset())
	assert.Equal(t, float32(0), s.Velocity())
}

func TestLaunchSequence_SemiImplicitEuler(t *testing.T) {
	var s LaunchSequence
	assert.True(t, s.Launch(mgl32.Vec3{}))

	dt := float32(0.1)
	var velocity, height float32
	for i := 0; i < 10; i++ {
		s.Step(dt)
		velocity += dt * 2
		height += velocity * dt
	}

	assert.InDelta(t, 2.0, s.Velocity(), 1e-5)
	assert.Equal(t, velocity, s.Velocity())
	assert.Equal(t, height, s.Offset().Y())
	assert.InDelta(t, 1.1, s.Offset().Y(), 1e-5)
	assert.NotEqual(t, float32(0.5*2*1*1), s.Offset().Y(), "not closed-form kinematics")
}

func TestLaunchSequence_LaunchCapturesOrigin(t *testing.T) {
	var s LaunchSequence
	origin := mgl32.Vec3{-1.23, 0, -4}
	s.Launch(origin)
	assert.Equal(t, origin, s.Offset())

	assert.False(t, s.Launch(mgl32.Vec3{9, 9, 9}), "second launch is ignored")
	assert.Equal(t, origin, s.Offset())
}

func TestLaunchSequence_Reset(t *testing.T) {
	var s LaunchSequence
	s.Launch(mgl32.Vec3{1, 2, 3})
	s.Step(1)
	s.Reset()

	assert.False(t, s.HasLaunched())
	assert.Equal(t, mgl32.Vec3{}, s.Offset())
	assert.Equal(t, float32(0), s.Velocity())
}

func TestLaunchSequence_Visible(t *testing.T) {
	var s LaunchSequence
	assert.True(t, s.Visible())

	s.Launch(mgl32.Vec3{0, 255.999, 0})
	assert.True(t, s.Visible())

	s.Reset()
	s.Launch(mgl32.Vec3{0, 256, 0})
	assert.True(t, s.Visible())

	s.Reset()
	s.Launch(mgl32.Vec3{0, 256.0001, 0})
	assert.False(t, s.Visible())
}

func TestLaunchSequence_ModelMatrix(t *testing.T) {
	launcher := mgl32.Translate3D(-1.23, 0, -4)

	var s LaunchSequence
	assert.Equal(t, launcher, s.ModelMatrix(launcher), "idle rocket rides the launcher")

	s.Launch(MatrixPosition(launcher))
	s.Step(1)
	m := s.ModelMatrix(launcher)
	assert.Equal(t, s.Offset(), MatrixPosition(m))
}

func TestNozzleLightPositions(t *testing.T) {
	l, r := NozzleLightPositions(mgl32.Translate3D(1, 2, 3))
	assert.InDelta(t, 0.75, l.X(), 1e-6)
	assert.InDelta(t, 1.25, r.X(), 1e-6)
	assert.InDelta(t, 2.5, l.Y(), 1e-6)
	assert.InDelta(t, 3.0, r.Z(), 1e-6)
}
