package gamemath

import "math"

// normalizeEpsilon is the length below which a vector is treated as zero.
const normalizeEpsilon = 1e-6

// Vec3 is a 3D vector. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero = Vec3{}
	Up   = Vec3{Y: 1}
)

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// Normalize returns the unit vector in the direction of v, or the zero vector
// when v is too short (or not finite) to have a direction.
func (v Vec3) Normalize() Vec3 {
	if !v.IsFinite() {
		return Zero
	}
	l := v.Len()
	if l < normalizeEpsilon {
		return Zero
	}
	return v.Scale(1 / l)
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (v Vec3) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// LerpVec3 interpolates between two vectors
func LerpVec3(from, to Vec3, t float64) Vec3 {
	return Vec3{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
		Z: from.Z + (to.Z-from.Z)*t,
	}
}
