package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type GeometryType int

const (
	GeometryBox GeometryType = iota
	GeometryPlane
	GeometryCone
	GeometrySphere
	// GeometryModel is loaded from Geometry.Path.
	GeometryModel
)

// Geometry describes a mesh shape. Dimensions are centered on the node origin.
type Geometry struct {
	Type GeometryType
	// Size is width/height/depth for boxes and width/height for planes.
	Size   rl.Vector3
	Radius float32
	Height float32
	// Segments is the radial segment count for cones and spheres.
	Segments int
	Path     string
}

func Box(w, h, d float32) Geometry {
	return Geometry{Type: GeometryBox, Size: rl.Vector3{X: w, Y: h, Z: d}}
}

// Plane is a w×h rectangle in the XY plane.
func Plane(w, h float32) Geometry {
	return Geometry{Type: GeometryPlane, Size: rl.Vector3{X: w, Y: h}}
}

func Cone(radius, height float32, segments int) Geometry {
	return Geometry{Type: GeometryCone, Radius: radius, Height: height, Segments: segments}
}

func Sphere(radius float32, segments int) Geometry {
	return Geometry{Type: GeometrySphere, Radius: radius, Segments: segments}
}

func ModelFile(path string) Geometry {
	return Geometry{Type: GeometryModel, Path: path}
}

type Material struct {
	Color     rl.Color
	Wireframe bool
	// Texture is an optional image path bound as the diffuse map.
	Texture string
	// Unlit materials ignore scene lighting.
	Unlit bool
}

type Mesh struct {
	Geometry Geometry
	Material Material
}
