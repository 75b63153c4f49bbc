package gamemath

import (
	"math"
	"testing"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

func TestYawBasis(t *testing.T) {
	tests := []struct {
		yaw            float64
		forward, right Vec3
	}{
		{0, Vec3{Z: 1}, Vec3{X: 1}},
		{90, Vec3{X: 1}, Vec3{Z: -1}},
		{180, Vec3{Z: -1}, Vec3{X: -1}},
		{-90, Vec3{X: -1}, Vec3{Z: 1}},
	}

	for _, tt := range tests {
		f, r := YawBasis(tt.yaw)
		approxEqual(t, f.X, tt.forward.X, 1e-9, "forward.x")
		approxEqual(t, f.Z, tt.forward.Z, 1e-9, "forward.z")
		approxEqual(t, r.X, tt.right.X, 1e-9, "right.x")
		approxEqual(t, r.Z, tt.right.Z, 1e-9, "right.z")
		approxEqual(t, HeadingYaw(f), DeltaAngle(0, tt.yaw), 1e-9, "heading")
	}
}

func TestLookForward_PositivePitchLooksDown(t *testing.T) {
	v := LookForward(0, 30)
	if v.Y >= 0 {
		t.Fatalf("forward.y = %v, want negative", v.Y)
	}
	approxEqual(t, v.Len(), 1, 1e-9, "length")
}

func TestDeltaAngle(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{0, 90, 90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{720, 0, 0},
	}
	for _, tt := range tests {
		approxEqual(t, DeltaAngle(tt.from, tt.to), tt.want, 1e-9, "delta")
	}
	approxEqual(t, LerpAngle(350, 10, 0.5), 360, 1e-9, "lerp angle")
}

func TestNormalize(t *testing.T) {
	if got := (Vec3{X: 1e-9}).Normalize(); got != Zero {
		t.Fatalf("tiny vector normalized to %+v", got)
	}
	if got := (Vec3{X: math.NaN()}).Normalize(); got != Zero {
		t.Fatalf("nan vector normalized to %+v", got)
	}
	approxEqual(t, Vec3{X: 3, Z: 4}.Normalize().Len(), 1, 1e-12, "length")
}

func TestBoxClosestPoint(t *testing.T) {
	b := NewBox(0, 0, 4, 2, -1, 0)
	p := b.ClosestPoint(Vec3{X: 5, Y: 3, Z: 1})
	if p != (Vec3{X: 4, Y: 0, Z: 1}) {
		t.Fatalf("closest = %+v", p)
	}
	approxEqual(t, b.Width(), 4, 0, "width")
	approxEqual(t, b.Depth(), 2, 0, "depth")
}

func TestLerpClampsT(t *testing.T) {
	approxEqual(t, Lerp(0, 10, 2), 10, 0, "lerp")
	approxEqual(t, Lerp(0, 10, -1), 0, 0, "lerp")
	approxEqual(t, Sanitize(math.Inf(-1)), 0, 0, "sanitize")
}
