package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// FOV is the field-of-view factor of the perspective divide.
	FOV = 70.0
	// AspectRatio stretches projected coordinates for a 16:9 look.
	AspectRatio = 16.0 / 9.0
	// ProjectionScale is the depth scale the scene projects with by default.
	ProjectionScale = 8.0
)

// Vec3 is a 3D point or vector.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Finite reports whether no component is NaN or infinite.
func (v Vec3) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Project maps v to screen space around (centerX, centerY) and shifts the
// result by the offset. Screen y grows downwards. Z is passed through.
//
// When 1+z/(FOV*scale) is zero the result is not finite; DrawTriangle skips
// such input.
func (v Vec3) Project(centerX, centerY int, scale, offsetX, offsetY float64) Vec3 {
	d := 1 + v.Z/(FOV*scale)
	px := v.X / d * AspectRatio
	py := v.Y / d * AspectRatio
	return Vec3{
		X: float64(centerX) + px + offsetX,
		Y: float64(centerY) - py + offsetY,
		Z: v.Z,
	}
}

// Rotation returns the matrix that rotates about X, then Y, then Z.
func Rotation(angleX, angleY, angleZ float64) mgl64.Mat3 {
	return mgl64.Rotate3DZ(angleZ).Mul3(mgl64.Rotate3DY(angleY)).Mul3(mgl64.Rotate3DX(angleX))
}

// Transform applies m to v.
func (v Vec3) Transform(m mgl64.Mat3) Vec3 {
	r := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}
