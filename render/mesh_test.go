package render

import (
	"errors"
	"math"
	"testing"
)

func TestSphereCounts(t *testing.T) {
	for _, tc := range []struct{ lat, lon int }{{1, 1}, {2, 2}, {3, 7}, {20, 20}} {
		s, err := NewSphere(5, tc.lat, tc.lon)
		if err != nil {
			t.Fatalf("NewSphere(%d,%d): %v", tc.lat, tc.lon, err)
		}
		wantV := (tc.lat + 1) * (tc.lon + 1)
		wantT := 2 * tc.lat * tc.lon
		if len(s.Vertices()) != wantV || len(s.Triangles()) != wantT {
			t.Fatalf("%dx%d: vertices=%d triangles=%d, want %d/%d",
				tc.lat, tc.lon, len(s.Vertices()), len(s.Triangles()), wantV, wantT)
		}
		s.Rotate(0.3, 1.1, -2)
		if len(s.Vertices()) != wantV || len(s.Triangles()) != wantT {
			t.Fatalf("%dx%d after rotate: vertices=%d triangles=%d", tc.lat, tc.lon, len(s.Vertices()), len(s.Triangles()))
		}
	}
}

func TestTorusCounts(t *testing.T) {
	tr, err := NewTorus(3, 1, 12, 6)
	if err != nil {
		t.Fatalf("NewTorus: %v", err)
	}
	if len(tr.Vertices()) != 13*7 || len(tr.Triangles()) != 2*12*6 {
		t.Fatalf("vertices=%d triangles=%d", len(tr.Vertices()), len(tr.Triangles()))
	}
	// Every point lies on the tube surface.
	for i, v := range tr.Vertices() {
		ring := math.Hypot(v.X, v.Z) - 3
		if d := math.Hypot(ring, v.Y); math.Abs(d-1) > 1e-9 {
			t.Fatalf("vertex %d off the tube: %v", i, d)
		}
	}
}

func TestMeshConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		make func() error
		want error
	}{
		{"zero latitude", func() error { _, err := NewSphere(1, 0, 4); return err }, ErrInvalidSteps},
		{"negative longitude", func() error { _, err := NewSphere(1, 4, -1); return err }, ErrInvalidSteps},
		{"nan radius", func() error { _, err := NewSphere(math.NaN(), 4, 4); return err }, ErrInvalidRadius},
		{"negative radius", func() error { _, err := NewSphere(-1, 4, 4); return err }, ErrInvalidRadius},
		{"torus steps", func() error { _, err := NewTorus(2, 1, 0, 3); return err }, ErrInvalidSteps},
		{"torus radius", func() error { _, err := NewTorus(math.Inf(1), 1, 3, 3); return err }, ErrInvalidRadius},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.make(); !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
}

func TestRotatePreservesLength(t *testing.T) {
	s, err := NewSphere(7, 8, 12)
	if err != nil {
		t.Fatal(err)
	}
	before := append([]Vec3(nil), s.Vertices()...)
	s.Rotate(0.7, -1.3, 2.9)
	for i, v := range s.Vertices() {
		if math.Abs(v.Len()-before[i].Len()) > 1e-9 {
			t.Fatalf("vertex %d length %v, want %v", i, v.Len(), before[i].Len())
		}
	}
}

func TestRotateIsFromReferencePose(t *testing.T) {
	const a = 0.4
	once, _ := NewSphere(3, 6, 6)
	twice, _ := NewSphere(3, 6, 6)

	once.Rotate(2*a, 0, 0)
	twice.Rotate(a, 0, 0)
	twice.Rotate(2*a, 0, 0)

	for i := range once.Vertices() {
		if d := once.Vertices()[i].Sub(twice.Vertices()[i]).Len(); d > 1e-12 {
			t.Fatalf("vertex %d differs by %v", i, d)
		}
	}

	// Rotating back to zero restores the generated pose.
	ref, _ := NewSphere(3, 6, 6)
	twice.Rotate(0, 0, 0)
	for i := range ref.Vertices() {
		if d := ref.Vertices()[i].Sub(twice.Vertices()[i]).Len(); d > 1e-12 {
			t.Fatalf("vertex %d not restored, off by %v", i, d)
		}
	}
}

func TestRotateRegeneratesTriangles(t *testing.T) {
	s, _ := NewSphere(2, 3, 4)
	s.Rotate(0.5, 0.25, 1)
	v := s.Vertices()
	cols := s.LongitudeSteps
	for lat := 0; lat < s.LatitudeSteps; lat++ {
		for lon := 0; lon < cols; lon++ {
			first := lat*(cols+1) + lon
			second := first + cols + 1
			k := 2 * (lat*cols + lon)
			want0 := Triangle{v[first], v[second], v[first+1]}
			want1 := Triangle{v[second], v[second+1], v[first+1]}
			if s.Triangles()[k] != want0 || s.Triangles()[k+1] != want1 {
				t.Fatalf("cell (%d,%d) triangles out of sync with vertices", lat, lon)
			}
		}
	}
}

func TestTrianglesAreSnapshots(t *testing.T) {
	s, _ := NewSphere(1, 4, 4)
	tris := s.Triangles()
	first := tris[5]
	s.Rotate(1, 2, 3)
	if tris[5] != first {
		t.Fatalf("extracted triangle changed after rotate: %+v -> %+v", first, tris[5])
	}
	if s.Triangles()[5] == first {
		t.Fatalf("mesh triangles did not change after rotate")
	}
}

func TestSphereTwoByTwo(t *testing.T) {
	s, err := NewSphere(1, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Vertices()) != 9 || len(s.Triangles()) != 8 {
		t.Fatalf("vertices=%d triangles=%d, want 9/8", len(s.Vertices()), len(s.Triangles()))
	}
	s.Rotate(0, 0, 0)

	at := func(lat, lon int) Vec3 {
		theta := math.Pi * float64(lat) / 2
		phi := 2 * math.Pi * float64(lon) / 2
		return V3(math.Sin(theta)*math.Cos(phi), math.Cos(theta), math.Sin(theta)*math.Sin(phi))
	}
	same := func(a, b Vec3) bool { return a.Sub(b).Len() < 1e-12 }

	k := 0
	for lat := 0; lat < 2; lat++ {
		for lon := 0; lon < 2; lon++ {
			t0 := s.Triangles()[k]
			t1 := s.Triangles()[k+1]
			if !same(t0.P1, at(lat, lon)) || !same(t0.P2, at(lat+1, lon)) || !same(t0.P3, at(lat, lon+1)) {
				t.Fatalf("triangle %d = %+v", k, t0)
			}
			if !same(t1.P1, at(lat+1, lon)) || !same(t1.P2, at(lat+1, lon+1)) || !same(t1.P3, at(lat, lon+1)) {
				t.Fatalf("triangle %d = %+v", k+1, t1)
			}
			k += 2
		}
	}

	// Equator point at lon=1 is (-1, 0, 0); north pole is (0, 1, 0).
	if !same(s.Vertices()[4], V3(-1, 0, 0)) || !same(s.Vertices()[0], V3(0, 1, 0)) {
		t.Fatalf("unexpected vertices %+v", s.Vertices())
	}
}

func TestMeshInterface(t *testing.T) {
	var _ Mesh = (*Sphere)(nil)
	var _ Mesh = (*Torus)(nil)
	var _ Mesh = (*GridMesh)(nil)
}
