package stroke

import "slices"

// Resolution is the number of equally spaced points every stroke is
// resampled to. A resampled Shape holds the Resolution-1 directions between
// them.
const Resolution = 16

// Resample converts points into a Shape of at most Resolution-1 unit
// direction vectors, one per equal-length piece of the stroke's path. The
// result does not depend on the stroke's position, scale or drawing speed.
//
// An empty stroke, a single point, or a stroke whose points all coincide
// yields an empty Shape. points is not modified.
func Resample(points []Point) Shape {
	if len(points) < 2 {
		return Shape{}
	}
	I := pathLength(points) / float64(Resolution-1)
	if I == 0 {
		return Shape{}
	}

	// Boundary points are inserted into this copy so that the rest of a long
	// segment is walked again and can produce further boundaries.
	pts := slices.Clone(points)
	vectors := make([]Vector, 0, Resolution-1)
	prev := pts[0]
	D := 0.0
	for i := 1; i < len(pts) && len(vectors) < Resolution-1; i++ {
		a, b := pts[i-1], pts[i]
		d := distance(a, b)
		if D+d >= I {
			// D < I here, so d > 0.
			t := (I - D) / d
			q := Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			vectors = append(vectors, direction(prev, q))
			D = 0
			prev = q
			pts = slices.Insert(pts, i, q)
		} else {
			D += d
		}
	}

	// Rounding can leave the final boundary just out of reach.
	if len(vectors) == Resolution-2 && D > 0 {
		vectors = append(vectors, direction(prev, pts[len(pts)-1]))
	}

	return Shape{vectors: vectors}
}
