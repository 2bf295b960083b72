package stroke

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	ErrShapeTooLong = errors.New("shape has more vectors than the resampling resolution allows")
	ErrNotUnit      = errors.New("shape vector is neither unit length nor zero")
)

const unitTolerance = 1e-6

// Shape is a resampled stroke: an ordered sequence of at most Resolution-1
// direction vectors. The zero value is an empty Shape.
type Shape struct {
	vectors []Vector
}

// ShapeFromVectors rebuilds a Shape from previously resampled vectors, for
// example ones read back from storage. It rejects input that could not have
// come from Resample.
func ShapeFromVectors(vectors []Vector) (Shape, error) {
	if len(vectors) > Resolution-1 {
		return Shape{}, fmt.Errorf("%w: %d > %d", ErrShapeTooLong, len(vectors), Resolution-1)
	}
	for i, v := range vectors {
		l := v.Len()
		if l != 0 && math.Abs(l-1) > unitTolerance {
			return Shape{}, fmt.Errorf("%w: index %d has length %g", ErrNotUnit, i, l)
		}
	}
	return Shape{vectors: slices.Clone(vectors)}, nil
}

func (s Shape) Len() int {
	return len(s.vectors)
}

func (s Shape) At(i int) Vector {
	return s.vectors[i]
}

// Vectors returns a copy of the shape's direction vectors.
func (s Shape) Vectors() []Vector {
	return slices.Clone(s.vectors)
}

func (s Shape) MarshalJSON() ([]byte, error) {
	if s.vectors == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.vectors)
}

func (s *Shape) UnmarshalJSON(data []byte) error {
	var vectors []Vector
	if err := json.Unmarshal(data, &vectors); err != nil {
		return err
	}
	shape, err := ShapeFromVectors(vectors)
	if err != nil {
		return err
	}
	*s = shape
	return nil
}

func (s Shape) MarshalYAML() (interface{}, error) {
	if s.vectors == nil {
		return []Vector{}, nil
	}
	return s.vectors, nil
}

func (s *Shape) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var vectors []Vector
	if err := unmarshal(&vectors); err != nil {
		return err
	}
	shape, err := ShapeFromVectors(vectors)
	if err != nil {
		return err
	}
	*s = shape
	return nil
}

// Template is a named Shape used as a recognition target.
type Template struct {
	id    string
	shape Shape
}

// NewTemplate tags an already resampled shape with id.
func NewTemplate(id string, shape Shape) Template {
	return Template{id: id, shape: shape}
}

// CreateTemplate resamples points into a template named id. It reports false
// when points is empty.
func CreateTemplate(id string, points []Point) (Template, bool) {
	if len(points) == 0 {
		return Template{}, false
	}
	return Template{id: id, shape: Resample(points)}, true
}

func (t Template) ID() string {
	return t.id
}

func (t Template) Shape() Shape {
	return t.shape
}
