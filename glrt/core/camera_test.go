package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func testCamera() *Camera {
	return NewCamera(CameraSettings{ScreenWidth: 800, ScreenHeight: 600, NearPlane: 0.1, FarPlane: 1000}, mgl32.Vec3{0, 5, 12})
}

func TestCamera_ForwardLooksDownNegativeZ(t *testing.T) {
	c := testCamera()
	f := c.Forward()
	assert.InDelta(t, 0.0, f.X(), 1e-6)
	assert.InDelta(t, -1.0, f.Z(), 1e-6)
}

func TestCamera_ProcessKeyboard(t *testing.T) {
	c := testCamera()
	c.ProcessKeyboard(CameraForward, 2)
	assert.InDelta(t, 10.0, c.Position.Z(), 1e-5)

	c.ProcessKeyboard(CameraRight, 1)
	assert.InDelta(t, 1.0, c.Position.X(), 1e-5)

	c.ProcessKeyboard(CameraLeft, 1)
	c.ProcessKeyboard(CameraBackward, 2)
	assert.InDelta(t, 0.0, c.Position.X(), 1e-5)
	assert.InDelta(t, 12.0, c.Position.Z(), 1e-5)
}

func TestCamera_PitchClamped(t *testing.T) {
	c := testCamera()
	c.ProcessMouseMovement(0, 5000)
	assert.Equal(t, float32(89), c.Pitch)
	c.ProcessMouseMovement(0, -5000)
	assert.Equal(t, float32(-89), c.Pitch)
}

func TestCamera_ZoomClamped(t *testing.T) {
	c := testCamera()
	c.ProcessMouseScroll(-10)
	assert.Equal(t, float32(45), c.Zoom)
	c.ProcessMouseScroll(100)
	assert.Equal(t, float32(1), c.Zoom)
}

func TestCamera_Matrices(t *testing.T) {
	c := testCamera()
	eye := c.ViewMatrix().Mul4x1(c.Position.Vec4(1))
	assert.InDelta(t, 0.0, eye.Vec3().Len(), 1e-4, "eye maps to the view origin")

	c.UpdateScreenSize(1000, 500)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 1000), c.ProjectionMatrix())
}
