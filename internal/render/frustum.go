package render

import (
	"math"

	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	nearPlane = 0.1
	farPlane  = 1000.0
)

// Frustum holds the six view planes used for culling.
type Frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// plane is ax + by + cz + d = 0 with a unit normal.
type plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the frustum of cam for the given viewport aspect
// ratio. The planes are derived from the camera basis, with normals
// pointing inward.
func ExtractFrustum(cam rl.Camera3D, aspect float32) Frustum {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.Up))
	up := rl.Vector3CrossProduct(right, forward)
	eye := cam.Position

	var f Frustum
	if cam.Projection == rl.CameraOrthographic {
		halfH := cam.Fovy / 2
		halfW := halfH * aspect
		f.planes[0] = offsetPlane(right, eye, -halfW)
		f.planes[1] = offsetPlane(rl.Vector3Negate(right), eye, -halfW)
		f.planes[2] = offsetPlane(up, eye, -halfH)
		f.planes[3] = offsetPlane(rl.Vector3Negate(up), eye, -halfH)
	} else {
		tanV := float32(math.Tan(float64(cam.Fovy*rl.Deg2rad) / 2))
		tanH := tanV * aspect
		side := func(axis rl.Vector3, tan float32) plane {
			return offsetPlane(rl.Vector3Add(rl.Vector3Scale(forward, tan), axis), eye, 0)
		}
		f.planes[0] = side(right, tanH)
		f.planes[1] = side(rl.Vector3Negate(right), tanH)
		f.planes[2] = side(up, tanV)
		f.planes[3] = side(rl.Vector3Negate(up), tanV)
	}
	f.planes[4] = offsetPlane(forward, rl.Vector3Add(eye, rl.Vector3Scale(forward, nearPlane)), 0)
	f.planes[5] = offsetPlane(rl.Vector3Negate(forward), rl.Vector3Add(eye, rl.Vector3Scale(forward, farPlane)), 0)
	return f
}

// offsetPlane is the plane with the given normal through point, moved by
// shift along the normal.
func offsetPlane(normal, point rl.Vector3, shift float32) plane {
	n := rl.Vector3Normalize(normal)
	return plane{normal: n, distance: -rl.Vector3DotProduct(n, point) - shift}
}

// ContainsSphere reports whether the sphere touches the frustum.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

// BoundingRadius is the radius of a sphere around the node origin enclosing
// g. Model files have no known extent and report false.
func BoundingRadius(g engine.Geometry) (float32, bool) {
	switch g.Type {
	case engine.GeometryBox:
		return rl.Vector3Length(g.Size) / 2, true
	case engine.GeometryPlane:
		return float32(math.Hypot(float64(g.Size.X), float64(g.Size.Y))) / 2, true
	case engine.GeometryCone:
		return float32(math.Hypot(float64(g.Radius), float64(g.Height/2))), true
	case engine.GeometrySphere:
		return g.Radius, true
	}
	return 0, false
}

// visible reports whether the mesh node can be seen through f.
func (f *Frustum) visible(n *engine.Node, world rl.Matrix) bool {
	radius, ok := BoundingRadius(n.Mesh.Geometry)
	if !ok {
		return true
	}
	center := rl.Vector3Transform(rl.Vector3Zero(), world)
	return f.ContainsSphere(center, radius*maxScale(world))
}

func maxScale(m rl.Matrix) float32 {
	sx := rl.Vector3Length(rl.Vector3{X: m.M0, Y: m.M1, Z: m.M2})
	sy := rl.Vector3Length(rl.Vector3{X: m.M4, Y: m.M5, Z: m.M6})
	sz := rl.Vector3Length(rl.Vector3{X: m.M8, Y: m.M9, Z: m.M10})
	return max(sx, sy, sz)
}
