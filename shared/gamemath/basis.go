package gamemath

import "math"

const degToRad = math.Pi / 180

// YawBasis returns the flat forward and right unit vectors for a yaw in
// degrees. Yaw 0 faces +Z with +X to the right; positive yaw turns right.
func YawBasis(yawDeg float64) (forward, right Vec3) {
	s, c := math.Sincos(yawDeg * degToRad)
	return Vec3{X: s, Z: c}, Vec3{X: c, Z: -s}
}

// LookForward returns the camera forward vector for yaw and pitch in degrees.
// Positive pitch looks down.
func LookForward(yawDeg, pitchDeg float64) Vec3 {
	sy, cy := math.Sincos(yawDeg * degToRad)
	sp, cp := math.Sincos(pitchDeg * degToRad)
	return Vec3{X: sy * cp, Y: -sp, Z: cy * cp}
}

// HeadingYaw returns the yaw in degrees a flat direction points at.
func HeadingYaw(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z) / degToRad
}

// DeltaAngle returns the shortest signed difference between two angles in
// degrees, in (-180, 180].
func DeltaAngle(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// LerpAngle eases an angle toward a target along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	return from + DeltaAngle(from, to)*Clamp01(t)
}
