package render

import (
	"fmt"
	"math"
)

// Torus is a ring around the Y axis. Rows walk around the ring, columns
// around the tube.
type Torus struct {
	*GridMesh

	MajorRadius float64
	MinorRadius float64
	RingSteps   int
	TubeSteps   int
}

func NewTorus(major, minor float64, ringSteps, tubeSteps int) (*Torus, error) {
	if ringSteps <= 0 || tubeSteps <= 0 {
		return nil, fmt.Errorf("torus: %w (ring=%d tube=%d)", ErrInvalidSteps, ringSteps, tubeSteps)
	}
	if !validRadius(major) || !validRadius(minor) {
		return nil, fmt.Errorf("torus: %w (major=%v minor=%v)", ErrInvalidRadius, major, minor)
	}

	t := &Torus{
		MajorRadius: major,
		MinorRadius: minor,
		RingSteps:   ringSteps,
		TubeSteps:   tubeSteps,
	}
	t.GridMesh = newGridMesh(ringSteps, tubeSteps, t.point)
	return t, nil
}

func (t *Torus) point(ring, tube int) Vec3 {
	theta := 2 * math.Pi * float64(ring) / float64(t.RingSteps)
	phi := 2 * math.Pi * float64(tube) / float64(t.TubeSteps)
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	r := t.MajorRadius + t.MinorRadius*cp
	return Vec3{
		X: r * ct,
		Y: t.MinorRadius * sp,
		Z: r * st,
	}
}
