// Package camera implements a first-person camera steered by yaw and pitch.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the largest pitch magnitude in degrees. Looking straight up or
// down would make the front vector parallel to the world up vector.
const MaxPitch = 89.9

// Camera tracks a position and orientation. Angles are in degrees; yaw 0 and
// pitch 0 look down -Z.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	yaw      float32
	pitch    float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// Option is a functional option for configuring a Camera via New.
type Option func(*Camera)

// WithPosition sets the initial position.
func WithPosition(p mgl32.Vec3) Option {
	return func(c *Camera) {
		c.position = p
	}
}

// WithYaw sets the initial yaw in degrees.
func WithYaw(yaw float32) Option {
	return func(c *Camera) {
		c.yaw = yaw
	}
}

// WithPitch sets the initial pitch in degrees.
func WithPitch(pitch float32) Option {
	return func(c *Camera) {
		c.pitch = pitch
	}
}

// WithWorldUp sets the direction considered up, +Y by default. A zero vector
// is ignored.
func WithWorldUp(up mgl32.Vec3) Option {
	return func(c *Camera) {
		c.worldUp = up
	}
}

// New returns a camera at the origin looking down -Z, adjusted by opts.
func New(opts ...Option) *Camera {
	c := &Camera{worldUp: mgl32.Vec3{0, 1, 0}}
	for _, opt := range opts {
		opt(c)
	}
	if c.worldUp.Len() == 0 {
		c.worldUp = mgl32.Vec3{0, 1, 0}
	}
	c.worldUp = c.worldUp.Normalize()
	c.yaw, c.pitch = constrainAngles(c.yaw, c.pitch)
	c.updateVectors()
	return c
}

func constrainAngles(yaw, pitch float32) (float32, float32) {
	y := math.Mod(float64(yaw), 360)
	if y > 180 {
		y -= 360
	} else if y <= -180 {
		y += 360
	}
	return float32(y), mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	c.front = mgl32.Vec3{
		float32(math.Sin(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(-math.Cos(yaw) * math.Cos(pitch)),
	}.Normalize()
	right := c.front.Cross(c.worldUp)
	if right.Len() < 1e-6 {
		// front is parallel to world up, so keep the old right vector
		// flattened against the new front
		right = c.right.Sub(c.front.Mul(c.right.Dot(c.front)))
		if right.Len() < 1e-6 {
			right = mgl32.Vec3{float32(math.Cos(yaw)), 0, float32(math.Sin(yaw))}
		}
	}
	c.right = right.Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// Rotate turns the camera by the given yaw and pitch deltas in degrees. Yaw
// wraps around to (-180, 180] and pitch is clamped to ±MaxPitch.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.yaw, c.pitch = constrainAngles(c.yaw+dYaw, c.pitch+dPitch)
	c.updateVectors()
}

// Move translates the camera along its own axes: x to the right, y up and
// z to the front.
func (c *Camera) Move(local mgl32.Vec3) {
	c.position = c.position.
		Add(c.right.Mul(local.X())).
		Add(c.up.Mul(local.Y())).
		Add(c.front.Mul(local.Z()))
}

func (c *Camera) MoveFront(d float32) { c.position = c.position.Add(c.front.Mul(d)) }
func (c *Camera) MoveRight(d float32) { c.position = c.position.Add(c.right.Mul(d)) }
func (c *Camera) MoveUp(d float32)    { c.position = c.position.Add(c.up.Mul(d)) }

// SetPosition moves the camera to p.
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
}

// SetWorldUp changes the reference up direction and recomputes the basis.
// A zero vector is ignored. While the front vector is parallel to up the
// previous right vector is kept.
func (c *Camera) SetWorldUp(up mgl32.Vec3) {
	if up.Len() == 0 {
		return
	}
	c.worldUp = up.Normalize()
	c.updateVectors()
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) WorldUp() mgl32.Vec3  { return c.worldUp }
