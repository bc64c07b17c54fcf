package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction selects the axis a Move call translates along.
type Direction uint8

const (
	MoveForward Direction = iota
	MoveBackward
	MoveRight
	MoveLeft
	MoveUpward
	MoveDownward
)

// maxPitch keeps front away from the vertical axis, where right = front x up vanishes.
var maxPitch = mgl32.DegToRad(89)

// Camera is a free-flying viewer. Orientation is stored as pitch and yaw in
// radians; front, right and up are always re-derived from those angles.
type Camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	front    mgl32.Vec3 //z-axis
	right    mgl32.Vec3 //x-axis
	up       mgl32.Vec3 //y-axis
	worldUp  mgl32.Vec3 //global up, for vertical moves
	pitch    float32
	yaw      float32
}

// New builds a camera at position looking towards target. position and target
// must differ, otherwise the basis is NaN.
//
// The look-at basis computed from target is only a starting value: the
// angle-based derivation of Rotate(0, 0) runs last and replaces it, so a new
// camera always faces +X with zero pitch and yaw.
func New(position, target, worldUp mgl32.Vec3) *Camera {
	c := &Camera{
		position: position,
		target:   target,
		worldUp:  worldUp,
	}
	c.front = position.Sub(target).Normalize()
	c.right = worldUp.Cross(c.front).Normalize()
	c.up = c.front.Cross(c.right)
	c.Rotate(0, 0)
	return c
}

// ViewMatrix returns the world to eye transform for the current state.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// Move translates the camera by speed along the axis picked by direction.
// Vertical moves follow worldUp rather than the derived up vector.
func (c *Camera) Move(direction Direction, speed float32) {
	switch direction {
	case MoveForward:
		c.position = c.position.Add(c.front.Mul(speed))
	case MoveBackward:
		c.position = c.position.Sub(c.front.Mul(speed))
	case MoveLeft:
		c.position = c.position.Sub(c.right.Mul(speed))
	case MoveRight:
		c.position = c.position.Add(c.right.Mul(speed))
	case MoveUpward:
		c.position = c.position.Add(c.worldUp.Mul(speed))
	case MoveDownward:
		c.position = c.position.Sub(c.worldUp.Mul(speed))
	}
}

// Rotate adds the deltas (radians) to pitch and yaw and rebuilds the basis.
// Pitch is clamped to +-89 degrees; yaw is left unbounded.
func (c *Camera) Rotate(deltaPitch, deltaYaw float32) {
	c.pitch += deltaPitch
	c.yaw += deltaYaw

	if c.pitch > maxPitch {
		c.pitch = maxPitch
	}
	if c.pitch < -maxPitch {
		c.pitch = -maxPitch
	}

	pitch := float64(c.pitch)
	yaw := float64(c.yaw)
	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	// Crosses with the fixed world vertical, not c.worldUp. Cameras built
	// with a different worldUp get a right vector that disagrees with Move.
	c.right = c.front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Target() mgl32.Vec3   { return c.target }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) WorldUp() mgl32.Vec3  { return c.worldUp }

// Pitch returns the accumulated pitch in radians.
func (c *Camera) Pitch() float32 { return c.pitch }

// Yaw returns the accumulated yaw in radians.
func (c *Camera) Yaw() float32 { return c.yaw }
