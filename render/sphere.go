package render

import (
	"fmt"
	"math"
)

// Sphere is a UV sphere. Latitude bands are rows, longitude bands are columns.
type Sphere struct {
	*GridMesh

	Radius         float64
	LatitudeSteps  int
	LongitudeSteps int
}

// NewSphere generates a sphere centered at the origin with the poles on the
// Y axis.
func NewSphere(radius float64, latitudeSteps, longitudeSteps int) (*Sphere, error) {
	if latitudeSteps <= 0 || longitudeSteps <= 0 {
		return nil, fmt.Errorf("sphere: %w (latitude=%d longitude=%d)", ErrInvalidSteps, latitudeSteps, longitudeSteps)
	}
	if !validRadius(radius) {
		return nil, fmt.Errorf("sphere: %w (radius=%v)", ErrInvalidRadius, radius)
	}

	s := &Sphere{
		Radius:         radius,
		LatitudeSteps:  latitudeSteps,
		LongitudeSteps: longitudeSteps,
	}
	s.GridMesh = newGridMesh(latitudeSteps, longitudeSteps, s.point)
	return s, nil
}

func (s *Sphere) point(lat, lon int) Vec3 {
	theta := math.Pi * float64(lat) / float64(s.LatitudeSteps)
	phi := 2 * math.Pi * float64(lon) / float64(s.LongitudeSteps)
	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return Vec3{
		X: s.Radius * sinTheta * cosPhi,
		Y: s.Radius * cosTheta,
		Z: s.Radius * sinTheta * sinPhi,
	}
}

func validRadius(r float64) bool {
	return r >= 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
