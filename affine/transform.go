// Package affine implements the 2-D rigid transform used to map a camera's
// raw detections into the shared field coordinate frame.
package affine

import "math"

// Transform is a rotate-then-translate rigid transform: a point (x,y) maps
// to (x*cos(phi) - y*sin(phi) + tx, x*sin(phi) + y*cos(phi) + ty).
type Transform struct {
	tx, ty, phi float64
	sinPhi      float64
	cosPhi      float64
}

// Identity returns the no-op transform.
func Identity() Transform {
	return New(0, 0, 0)
}

// New builds a Transform from a translation (tx, ty) and rotation phi
// (radians).
func New(tx, ty, phi float64) Transform {
	return Transform{
		tx:     tx,
		ty:     ty,
		phi:    phi,
		sinPhi: math.Sin(phi),
		cosPhi: math.Cos(phi),
	}
}

// ApplyPoint maps a raw camera point into the field frame.
func (t Transform) ApplyPoint(x, y float64) (float64, float64) {
	rx := x*t.cosPhi - y*t.sinPhi + t.tx
	ry := x*t.sinPhi + y*t.cosPhi + t.ty
	return rx, ry
}

// ApplyAngle maps a raw camera orientation into the field frame, wrapped
// into [0, 2*pi).
func (t Transform) ApplyAngle(theta float64) float64 {
	return normalize(theta - t.phi)
}

const twoPi = 2 * math.Pi

// normalize wraps theta into [0, 2*pi).
func normalize(theta float64) float64 {
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}
