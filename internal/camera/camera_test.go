package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3)
	assert.InDelta(t, want.Y, got.Y, 1e-3)
	assert.InDelta(t, want.Z, got.Z, 1e-3)
}

func TestCameraFollowsLiveTarget(t *testing.T) {
	heli := rl.Vector3{X: 6, Y: 42}
	c := New(rl.Vector3{Y: 45, Z: 5}, func() rl.Vector3 { return heli })

	cam := c.GetRaylibCamera()
	assert.Equal(t, heli, cam.Target)
	assert.Equal(t, rl.Vector3{Y: 45, Z: 5}, cam.Position)
	assert.Equal(t, float32(75), cam.Fovy)

	heli.Z += 3
	cam = c.GetRaylibCamera()
	assert.Equal(t, heli, cam.Target)
	assert.Equal(t, rl.Vector3{Y: 45, Z: 5}, cam.Position, "camera stays put while the target moves")
}

func TestNilTargetLooksAtOrigin(t *testing.T) {
	c := New(rl.Vector3{Z: 10}, nil)
	assert.Equal(t, rl.Vector3{}, c.LookAt())
}

func TestRotateKeepsDistance(t *testing.T) {
	c := New(rl.Vector3{X: 10}, nil)
	c.Rotate(100, 0)
	assert.InDelta(t, 10, c.Distance(), 1e-3)
	assert.InDelta(t, 0, c.Position.Y, 1e-4)
	assert.NotEqual(t, float32(10), c.Position.X)

	c.Rotate(0, 100)
	assert.InDelta(t, 10, c.Distance(), 1e-3)
	assert.Greater(t, c.Position.Y, float32(0))
}

func TestRotateStopsShortOfPole(t *testing.T) {
	c := New(rl.Vector3{X: 10}, nil)
	c.Rotate(0, 1e6)
	assert.Less(t, c.Position.Y, float32(10))
	assert.Greater(t, c.Position.Y, float32(9.9))
}

func TestZoom(t *testing.T) {
	c := New(rl.Vector3{Z: 10}, nil)
	c.Zoom(1)
	assertVec(t, rl.Vector3{Z: 9}, c.Position)

	c.Zoom(-2)
	assertVec(t, rl.Vector3{Z: 10.8}, c.Position)

	c.Zoom(100)
	assert.InDelta(t, c.MinDistance, c.Distance(), 1e-4)
}

func TestPanMovesCameraAndLookAt(t *testing.T) {
	c := New(rl.Vector3{Z: 10}, nil)
	before := rl.Vector3Subtract(c.Position, c.LookAt())

	c.PanBy(50, 0)
	after := rl.Vector3Subtract(c.Position, c.LookAt())
	assertVec(t, before, after)
	assert.NotZero(t, c.Pan.X)
	assert.InDelta(t, 0, c.Pan.Y, 1e-5)
	assert.Equal(t, c.LookAt(), c.GetRaylibCamera().Target)
}
