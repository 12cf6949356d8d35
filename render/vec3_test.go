package render

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func TestProjectZeroDepth(t *testing.T) {
	got := V3(10, 0, 0).Project(400, 300, ProjectionScale, 0, 0)
	if !near(got.X, 400+10*16.0/9.0) {
		t.Fatalf("x=%v, want %v", got.X, 400+10*16.0/9.0)
	}
	if !near(got.Y, 300) {
		t.Fatalf("y=%v, want 300", got.Y)
	}
	if math.Abs(got.X-417.78) > 0.01 {
		t.Fatalf("x=%v, want about 417.78", got.X)
	}
}

func TestProjectFlipsYAndOffsets(t *testing.T) {
	got := V3(0, 9, 0).Project(100, 100, ProjectionScale, 5, -7)
	if !near(got.X, 105) {
		t.Fatalf("x=%v, want 105", got.X)
	}
	if !near(got.Y, 100-16+(-7)) {
		t.Fatalf("y=%v, want %v", got.Y, 100-16-7.0)
	}
}

func TestProjectDepth(t *testing.T) {
	const scale = 2.0
	v := V3(3, -4, 140)
	got := v.Project(0, 0, scale, 0, 0)

	d := 1 + 140/(FOV*scale)
	if !near(got.X, 3/d*AspectRatio) || !near(got.Y, 4/d*AspectRatio) {
		t.Fatalf("got %+v", got)
	}
	if got.Z != 140 {
		t.Fatalf("z=%v, want passthrough 140", got.Z)
	}
}

func TestProjectDegenerate(t *testing.T) {
	// 1 + z/(FOV*scale) == 0
	got := V3(1, 1, -FOV*ProjectionScale).Project(0, 0, ProjectionScale, 0, 0)
	if got.Finite() {
		t.Fatalf("expected non-finite projection, got %+v", got)
	}
	got = V3(0, 0, -FOV*ProjectionScale).Project(0, 0, ProjectionScale, 0, 0)
	if !math.IsNaN(got.X) {
		t.Fatalf("0/0 should be NaN, got %v", got.X)
	}
}

func TestRotationAxes(t *testing.T) {
	q := math.Pi / 2
	cases := []struct {
		name       string
		ax, ay, az float64
		in, want   Vec3
	}{
		{"x turns y into z", q, 0, 0, V3(0, 1, 0), V3(0, 0, 1)},
		{"y turns z into x", 0, q, 0, V3(0, 0, 1), V3(1, 0, 0)},
		{"y turns x into -z", 0, q, 0, V3(1, 0, 0), V3(0, 0, -1)},
		{"z turns x into y", 0, 0, q, V3(1, 0, 0), V3(0, 1, 0)},
		{"x then y", q, q, 0, V3(0, 1, 0), V3(1, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Transform(Rotation(tc.ax, tc.ay, tc.az))
			if d := got.Sub(tc.want).Len(); d > 1e-12 {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
