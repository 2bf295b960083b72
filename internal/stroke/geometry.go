package stroke

import "math"

// Point is a position in the caller's coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector is a direction between two points.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

func (v Vector) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func pathLength(points []Point) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += distance(points[i-1], points[i])
	}
	return d
}

func distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// direction returns the unit vector from a to b, or the zero vector when
// a and b coincide.
func direction(a, b Point) Vector {
	r := Vector{X: b.X - a.X, Y: b.Y - a.Y}
	rd := r.Len()
	if rd == 0 {
		return Vector{}
	}
	return Vector{X: r.X / rd, Y: r.Y / rd}
}
