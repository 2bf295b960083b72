package stroke

import "math"

// Result is the outcome of a successful recognition.
type Result struct {
	Template   Template
	Similarity float64
}

// Recognize resamples points and scores them against templates. See
// RecognizeShape for the scoring rule.
func Recognize(points []Point, templates []Template) (Result, bool) {
	if len(points) == 0 || len(templates) == 0 {
		return Result{}, false
	}
	return RecognizeShape(Resample(points), templates)
}

// RecognizeShape scores an already resampled candidate against templates.
//
// For each template, in order, the dot products of corresponding vectors are
// summed over the shorter of the two shapes. Every partial sum along the way
// competes against a single best value shared by all templates, and the
// template that produced the highest partial sum wins. Ties keep the earlier
// template. The result is absent when c is empty or no template has any
// vector to compare.
func RecognizeShape(c Shape, templates []Template) (Result, bool) {
	if c.Len() == 0 || len(templates) == 0 {
		return Result{}, false
	}

	similarity := -math.MaxFloat64
	best := -1
	for ti, t := range templates {
		d := 0.0
		count := min(c.Len(), t.shape.Len())
		for i := 0; i < count; i++ {
			d += t.shape.vectors[i].Dot(c.vectors[i])
			if d > similarity {
				similarity = d
				best = ti
			}
		}
	}

	if best < 0 {
		return Result{}, false
	}
	return Result{Template: templates[best], Similarity: similarity}, true
}

// Score describes how one template compared against a candidate.
type Score struct {
	Template Template
	// Best is the highest partial sum reached, the value RecognizeShape
	// competes with.
	Best float64
	// Total is the sum over every compared vector.
	Total float64
	// Compared is the number of vector pairs compared.
	Compared int
}

// Rank returns one Score per template in collection order. Templates with
// nothing to compare get zero scores.
func Rank(c Shape, templates []Template) []Score {
	scores := make([]Score, 0, len(templates))
	for _, t := range templates {
		s := Score{Template: t, Best: -math.MaxFloat64}
		s.Compared = min(c.Len(), t.shape.Len())
		for i := 0; i < s.Compared; i++ {
			s.Total += t.shape.vectors[i].Dot(c.vectors[i])
			s.Best = max(s.Best, s.Total)
		}
		if s.Compared == 0 {
			s.Best = 0
		}
		scores = append(scores, s)
	}
	return scores
}
