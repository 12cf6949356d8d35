package render

import "errors"

var (
	// ErrInvalidSteps reports a shape with zero or negative step counts.
	ErrInvalidSteps = errors.New("step counts must be positive")
	// ErrInvalidRadius reports a negative or non-finite radius.
	ErrInvalidRadius = errors.New("radius must be finite and non-negative")
)

// Mesh is a shape the scene can animate and draw.
//
// Implementations must keep Triangles in sync with Vertices: after Rotate
// returns, Triangles reflects the rotated pose.
type Mesh interface {
	// Rotate sets the orientation to the given total angles (radians),
	// measured from the generated pose.
	Rotate(angleX, angleY, angleZ float64)
	Vertices() []Vec3
	Triangles() []Triangle
}

// GridMesh is a mesh sampled on a (rows+1) x (cols+1) parametric grid.
//
// The grid is row-major. The last column and the first/last rows may repeat
// points (seams, poles); the resulting zero-area triangles are harmless for
// outlines.
type GridMesh struct {
	rows, cols int

	base      []Vec3 // reference pose, never modified after generation
	vertices  []Vec3
	triangles []Triangle
}

// newGridMesh samples at(row, col) for every grid point and triangulates the
// result. rows and cols must already be validated.
func newGridMesh(rows, cols int, at func(row, col int) Vec3) *GridMesh {
	m := &GridMesh{rows: rows, cols: cols}
	m.generateVertices(at)
	m.generateIndices()
	return m
}

func (m *GridMesh) generateVertices(at func(row, col int) Vec3) {
	m.base = make([]Vec3, 0, (m.rows+1)*(m.cols+1))
	for row := 0; row <= m.rows; row++ {
		for col := 0; col <= m.cols; col++ {
			m.base = append(m.base, at(row, col))
		}
	}
	m.vertices = make([]Vec3, len(m.base))
	copy(m.vertices, m.base)
}

// generateIndices rebuilds the triangle list from the current vertices.
//
// A new slice is allocated every time so triangle slices handed out earlier
// keep their values.
func (m *GridMesh) generateIndices() {
	tris := make([]Triangle, 0, 2*m.rows*m.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			first := row*(m.cols+1) + col
			second := first + m.cols + 1

			tris = append(tris,
				Triangle{m.vertices[first], m.vertices[second], m.vertices[first+1]},
				Triangle{m.vertices[second], m.vertices[second+1], m.vertices[first+1]},
			)
		}
	}
	m.triangles = tris
}

// Rotate recomputes every vertex from the reference pose, rotating about X,
// then Y, then Z, and regenerates the triangles.
func (m *GridMesh) Rotate(angleX, angleY, angleZ float64) {
	rot := Rotation(angleX, angleY, angleZ)
	for i, v := range m.base {
		m.vertices[i] = v.Transform(rot)
	}
	m.generateIndices()
}

// Vertices returns the current pose. The slice is owned by the mesh.
func (m *GridMesh) Vertices() []Vec3 { return m.vertices }

// Triangles returns the triangulation of the current pose.
func (m *GridMesh) Triangles() []Triangle { return m.triangles }
