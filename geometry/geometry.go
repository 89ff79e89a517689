// Package geometry implements basic 3D types shared by volumes and converters.
package geometry

import "math"

// Tolerance is the cartesian tolerance, in mm, used by containment and overlap checks.
const Tolerance = 1e-9

// Point represent a point in space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3D represent 3D vector.
type Vec3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Origin ...
var Origin = Point{}

// Add translates p by v.
func (p Point) Add(v Vec3D) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns vector from o to p.
func (p Point) Sub(o Point) Vec3D {
	return Vec3D{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// Add ...
func (v Vec3D) Add(o Vec3D) Vec3D {
	return Vec3D{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale ...
func (v Vec3D) Scale(f float64) Vec3D {
	return Vec3D{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// ToPoint ...
func (v Vec3D) ToPoint() Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

// CenterAndSizeToMinAndMax converts center and full size along one axis to its bounds.
func CenterAndSizeToMinAndMax(center, size float64) (float64, float64) {
	return center - size/2.0, center + size/2.0
}

// Extent is an axis-aligned bounding box.
type Extent struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// NewExtent builds extent from center and half-lengths.
func NewExtent(center Point, half Vec3D) Extent {
	return Extent{
		Min: Point{X: center.X - half.X, Y: center.Y - half.Y, Z: center.Z - half.Z},
		Max: Point{X: center.X + half.X, Y: center.Y + half.Y, Z: center.Z + half.Z},
	}
}

// Translate ...
func (e Extent) Translate(v Vec3D) Extent {
	return Extent{Min: e.Min.Add(v), Max: e.Max.Add(v)}
}

// Size returns full lengths along each axis.
func (e Extent) Size() Vec3D {
	return e.Max.Sub(e.Min)
}

// Center ...
func (e Extent) Center() Point {
	return e.Min.Add(e.Size().Scale(0.5))
}

// Volume ...
func (e Extent) Volume() float64 {
	s := e.Size()
	return s.X * s.Y * s.Z
}

// Contains reports whether other lies entirely inside e, allowing tolerance.
func (e Extent) Contains(other Extent, tolerance float64) bool {
	return other.Min.X >= e.Min.X-tolerance && other.Max.X <= e.Max.X+tolerance &&
		other.Min.Y >= e.Min.Y-tolerance && other.Max.Y <= e.Max.Y+tolerance &&
		other.Min.Z >= e.Min.Z-tolerance && other.Max.Z <= e.Max.Z+tolerance
}

// Overlaps reports whether interiors of e and other intersect deeper than tolerance.
// Touching faces do not overlap.
func (e Extent) Overlaps(other Extent, tolerance float64) bool {
	return overlapDepth(e.Min.X, e.Max.X, other.Min.X, other.Max.X) > tolerance &&
		overlapDepth(e.Min.Y, e.Max.Y, other.Min.Y, other.Max.Y) > tolerance &&
		overlapDepth(e.Min.Z, e.Max.Z, other.Min.Z, other.Max.Z) > tolerance
}

// Protrusion returns how far other sticks out of e along the worst axis, 0 if contained.
func (e Extent) Protrusion(other Extent) float64 {
	worst := 0.0
	for _, d := range []float64{
		e.Min.X - other.Min.X, other.Max.X - e.Max.X,
		e.Min.Y - other.Min.Y, other.Max.Y - e.Max.Y,
		e.Min.Z - other.Min.Z, other.Max.Z - e.Max.Z,
	} {
		worst = math.Max(worst, d)
	}
	return worst
}

func overlapDepth(aMin, aMax, bMin, bMax float64) float64 {
	return math.Min(aMax, bMax) - math.Max(aMin, bMin)
}
