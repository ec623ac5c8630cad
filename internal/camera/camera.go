package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera looks at a live target and orbits around it with the mouse:
// left drag rotates, right drag pans, the wheel zooms. The camera position only
// changes on mouse input, so a moving target turns the view without dragging
// the camera along.
type OrbitCamera struct {
	Position rl.Vector3
	// Target returns the point to look at. Pan is added on top.
	Target func() rl.Vector3
	Pan    rl.Vector3
	Fovy   float32

	RotateSpeed float32 // radians per pixel
	PanSpeed    float32 // fraction of distance per pixel
	ZoomSpeed   float32 // fraction of distance per wheel step
	MinDistance float32
	MaxDistance float32
}

func New(pos rl.Vector3, target func() rl.Vector3) *OrbitCamera {
	if target == nil {
		target = rl.Vector3Zero
	}
	return &OrbitCamera{
		Position:    pos,
		Target:      target,
		Fovy:        75,
		RotateSpeed: 0.005,
		PanSpeed:    0.002,
		ZoomSpeed:   0.1,
		MinDistance: 1,
		MaxDistance: 500,
	}
}

func (c *OrbitCamera) LookAt() rl.Vector3 {
	return rl.Vector3Add(c.Target(), c.Pan)
}

func (c *OrbitCamera) Distance() float32 {
	return rl.Vector3Distance(c.Position, c.LookAt())
}

// Rotate orbits by pixel deltas: dx turns around the world Y axis, dy tilts.
// The tilt stops just short of the poles.
func (c *OrbitCamera) Rotate(dx, dy float32) {
	center := c.LookAt()
	offset := rl.Vector3Subtract(c.Position, center)
	r := rl.Vector3Length(offset)
	if r == 0 {
		return
	}
	yaw := math.Atan2(float64(offset.Z), float64(offset.X))
	pitch := math.Asin(float64(offset.Y / r))

	yaw += float64(dx * c.RotateSpeed)
	pitch += float64(dy * c.RotateSpeed)
	const limit = math.Pi/2 - 0.01
	pitch = max(-limit, min(limit, pitch))

	offset = rl.Vector3{
		X: r * float32(math.Cos(pitch)*math.Cos(yaw)),
		Y: r * float32(math.Sin(pitch)),
		Z: r * float32(math.Cos(pitch)*math.Sin(yaw)),
	}
	c.Position = rl.Vector3Add(center, offset)
}

// PanBy slides the camera and its look-at point across the view plane.
func (c *OrbitCamera) PanBy(dx, dy float32) {
	center := c.LookAt()
	forward := rl.Vector3Normalize(rl.Vector3Subtract(center, c.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1}))
	up := rl.Vector3CrossProduct(right, forward)

	scale := c.Distance() * c.PanSpeed
	move := rl.Vector3Add(rl.Vector3Scale(right, -dx*scale), rl.Vector3Scale(up, dy*scale))
	c.Position = rl.Vector3Add(c.Position, move)
	c.Pan = rl.Vector3Add(c.Pan, move)
}

// Zoom moves toward the look-at point for positive wheel steps.
func (c *OrbitCamera) Zoom(wheel float32) {
	center := c.LookAt()
	offset := rl.Vector3Subtract(c.Position, center)
	r := rl.Vector3Length(offset)
	if r == 0 || wheel == 0 {
		return
	}
	nr := r * (1 - wheel*c.ZoomSpeed)
	nr = max(c.MinDistance, min(c.MaxDistance, nr))
	c.Position = rl.Vector3Add(center, rl.Vector3Scale(offset, nr/r))
}

// Update polls the mouse. It must run on the window thread.
func (c *OrbitCamera) Update(deltaTime float32) {
	delta := rl.GetMouseDelta()
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		c.Rotate(-delta.X, delta.Y)
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		c.PanBy(delta.X, delta.Y)
	}
	c.Zoom(rl.GetMouseWheelMove())
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.LookAt(),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
