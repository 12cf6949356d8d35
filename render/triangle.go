package render

// Triangle is one mesh face. It holds copies of its vertices, so it stays
// valid after the mesh it came from is rotated.
type Triangle struct {
	P1, P2, P3 Vec3
}

// Project projects all three vertices, see Vec3.Project.
func (t Triangle) Project(centerX, centerY int, scale, offsetX, offsetY float64) Triangle {
	return Triangle{
		P1: t.P1.Project(centerX, centerY, scale, offsetX, offsetY),
		P2: t.P2.Project(centerX, centerY, scale, offsetX, offsetY),
		P3: t.P3.Project(centerX, centerY, scale, offsetX, offsetY),
	}
}

func (t Triangle) Finite() bool { return t.P1.Finite() && t.P2.Finite() && t.P3.Finite() }
