package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Rand is the random source used by wandering vehicles.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

const (
	DefaultVehicleSpeed float32 = 5.0
	// driftFactor is the extra fraction of direction added to x/z each drive.
	driftFactor float32 = 0.125
	minDecisionSeconds  = 2
	decisionSpread      = 5
)

// Vehicle wanders the ground plane, steering smoothly toward a heading it
// re-rolls every few seconds.
type Vehicle struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Target    mgl32.Vec3
	// Heading is atan2(direction.z, direction.x), in radians.
	Heading float32
	// DesiredHeading is the steering goal in degrees.
	DesiredHeading float32
	Speed          float32
	Headlight      LightHandle

	decisionTime      float32
	decisionTimeLimit float32
	rng               Rand
}

func NewVehicle(rng Rand) *Vehicle {
	v := &Vehicle{
		Speed: DefaultVehicleSpeed,
		rng:   rng,
	}
	v.DesiredHeading = float32(rng.IntN(360))
	v.decisionTimeLimit = v.rollDecisionInterval()
	v.decisionTime = v.decisionTimeLimit
	return v
}

func (v *Vehicle) rollDecisionInterval() float32 {
	return float32(v.rng.IntN(decisionSpread) + minDecisionSeconds)
}

// DecisionTimeLimit is the interval the current decision timer started from.
func (v *Vehicle) DecisionTimeLimit() float32 {
	return v.decisionTimeLimit
}

// DecisionTimeLeft is the remaining time before the next heading re-roll.
func (v *Vehicle) DecisionTimeLeft() float32 {
	return v.decisionTime
}

// NewHeadlight is the spot light a vehicle carries, aimed along its target.
func (v *Vehicle) NewHeadlight() Light {
	return NewLight(LightSpot, v.Position, mgl32.Vec3{1, 1, 1}, 0.5, v.Target)
}

// HeadlightPosition is where the attached headlight sits for the current pose.
func (v *Vehicle) HeadlightPosition() mgl32.Vec3 {
	return mgl32.Vec3{v.Position.X(), v.Position.Y() + 0.25, v.Position.Z() + 0.15}
}

// Drive advances the vehicle by dt seconds.
//
// Position is integrated twice along x/z: once by the full direction and once
// more by driftFactor of it. Both steps are observable in the demo and kept.
func (v *Vehicle) Drive(dt float32) {
	rad := float64(mgl32.DegToRad(v.DesiredHeading))
	v.Target[0] = float32(math.Sin(rad))
	v.Target[2] = float32(-math.Cos(rad))

	desired := v.Target.Mul(v.Speed).Mul(dt)
	steering := desired.Sub(v.Direction)

	v.Direction = v.Direction.Add(steering)
	v.Position = v.Position.Add(v.Direction)

	v.Heading = float32(math.Atan2(float64(v.Direction.Z()), float64(v.Direction.X())))

	v.Position[0] += v.Direction.X() * driftFactor
	v.Position[2] += v.Direction.Z() * driftFactor

	v.decisionTime -= dt
	if v.decisionTime <= 0 {
		v.decide()
	}
}

// decide picks a new integer heading within 180 of the current heading value.
// Heading is in radians while the window is in degrees; the demo has always
// mixed the two.
func (v *Vehicle) decide() {
	lo := int(v.Heading - 180)
	hi := int(v.Heading + 180)
	v.DesiredHeading = float32(v.rng.IntN(hi-lo+1) + lo)

	v.decisionTimeLimit = v.rollDecisionInterval()
	v.decisionTime = v.decisionTimeLimit
}

// ModelMatrix places the vehicle mesh, rotated by its desired heading.
func (v *Vehicle) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(v.Position.X(), v.Position.Y(), v.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-v.DesiredHeading)))
}
