package gamemath

// Box is an axis-aligned box.
type Box struct {
	Min, Max Vec3
}

// NewBox builds a box from a footprint on the XZ plane and a vertical span.
func NewBox(x, z, w, d, bottom, top float64) Box {
	return Box{
		Min: Vec3{X: x, Y: bottom, Z: z},
		Max: Vec3{X: x + w, Y: top, Z: z + d},
	}
}

// ClosestPoint returns the point inside the box nearest to p.
func (b Box) ClosestPoint(p Vec3) Vec3 {
	return Vec3{
		X: ClampFloat(p.X, b.Min.X, b.Max.X),
		Y: ClampFloat(p.Y, b.Min.Y, b.Max.Y),
		Z: ClampFloat(p.Z, b.Min.Z, b.Max.Z),
	}
}

// Width is the extent along X.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Depth is the extent along Z.
func (b Box) Depth() float64 { return b.Max.Z - b.Min.Z }

// Top is the height of the upper face.
func (b Box) Top() float64 { return b.Max.Y }

// Bottom is the height of the lower face.
func (b Box) Bottom() float64 { return b.Min.Y }
