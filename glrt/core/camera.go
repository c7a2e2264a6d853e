package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type CameraMovement int

const (
	CameraForward CameraMovement = iota
	CameraBackward
	CameraLeft
	CameraRight
)

// CameraSettings fixes the viewport and clip planes.
type CameraSettings struct {
	ScreenWidth  int
	ScreenHeight int
	NearPlane    float32
	FarPlane     float32
}

const (
	minZoom float32 = 1.0
	maxZoom float32 = 45.0
)

// Camera is a free-look camera with Y up. Yaw 0 looks down -Z.
type Camera struct {
	Settings    CameraSettings
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Zoom        float32
	Sensitivity float32
}

func NewCamera(settings CameraSettings, position mgl32.Vec3) *Camera {
	return &Camera{
		Settings:    settings,
		Position:    position,
		Zoom:        maxZoom,
		Sensitivity: 0.1,
	}
}

func (c *Camera) Forward() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Sin(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(-math.Cos(yaw) * math.Cos(pitch)),
	}.Normalize()
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

// ProcessKeyboard moves the camera by amount world units.
func (c *Camera) ProcessKeyboard(dir CameraMovement, amount float32) {
	switch dir {
	case CameraForward:
		c.Position = c.Position.Add(c.Forward().Mul(amount))
	case CameraBackward:
		c.Position = c.Position.Sub(c.Forward().Mul(amount))
	case CameraLeft:
		c.Position = c.Position.Sub(c.Right().Mul(amount))
	case CameraRight:
		c.Position = c.Position.Add(c.Right().Mul(amount))
	}
}

// ProcessMouseMovement turns the camera by a cursor delta in pixels. Positive
// dy looks up.
func (c *Camera) ProcessMouseMovement(dx, dy float64) {
	c.Yaw += float32(dx) * c.Sensitivity
	c.Pitch += float32(dy) * c.Sensitivity

	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *Camera) ProcessMouseScroll(dy float64) {
	c.Zoom -= float32(dy)
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
	if c.Zoom > maxZoom {
		c.Zoom = maxZoom
	}
}

func (c *Camera) UpdateScreenSize(width, height int) {
	c.Settings.ScreenWidth = width
	c.Settings.ScreenHeight = height
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(1)
	if c.Settings.ScreenHeight > 0 {
		aspect = float32(c.Settings.ScreenWidth) / float32(c.Settings.ScreenHeight)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, c.Settings.NearPlane, c.Settings.FarPlane)
}
