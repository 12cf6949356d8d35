package render

import "math"

// MaxCoord bounds screen coordinates accepted by DrawTriangle. Anything
// larger is treated like a non-finite projection and skipped.
const MaxCoord = 1 << 24

// DrawLine plots an 8-connected line between two points, both inclusive,
// using integer Bresenham.
//
// The line is always walked from the lower (x, y) endpoint so swapping the
// endpoints yields the same pixels.
func DrawLine(t Target, x1, y1, x2, y2 int, c Color) {
	if x2 < x1 || (x2 == x1 && y2 < y1) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx := absInt(x2 - x1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	dy := -absInt(y2 - y1)
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawTriangle outlines p1→p2→p3→p1 using the truncated x/y of each point.
// It draws nothing and returns false if any coordinate is not finite or
// exceeds MaxCoord.
func DrawTriangle(t Target, p1, p2, p3 Vec3, c Color) bool {
	if !drawable(p1) || !drawable(p2) || !drawable(p3) {
		return false
	}
	x1, y1 := int(p1.X), int(p1.Y)
	x2, y2 := int(p2.X), int(p2.Y)
	x3, y3 := int(p3.X), int(p3.Y)

	DrawLine(t, x1, y1, x2, y2, c)
	DrawLine(t, x2, y2, x3, y3, c)
	DrawLine(t, x3, y3, x1, y1, c)
	return true
}

func drawable(p Vec3) bool {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return false
	}
	return math.Abs(p.X) <= MaxCoord && math.Abs(p.Y) <= MaxCoord
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
