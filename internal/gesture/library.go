package gestures

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ThatOtherAndrew/pincher/internal/models"
	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

// Library is a template collection that can be recognised against from many
// goroutines while templates are still being added.
type Library struct {
	mu        sync.RWMutex
	templates []stroke.Template
}

// NewLibrary builds a library holding one template per learned sample, each
// named after its gesture's command.
func NewLibrary(gestures []models.GestureConfig) *Library {
	l := &Library{}
	for _, g := range gestures {
		for _, shape := range g.Templates {
			l.templates = append(l.templates, stroke.NewTemplate(g.Command, shape))
		}
	}
	return l
}

func (l *Library) Add(t ...stroke.Template) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.templates = append(l.templates, t...)
}

func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.templates)
}

// Templates returns a snapshot of the library's templates.
func (l *Library) Templates() []stroke.Template {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]stroke.Template(nil), l.templates...)
}

func (l *Library) Recognize(points []stroke.Point) (stroke.Result, bool) {
	return l.RecognizeShape(stroke.Resample(points))
}

func (l *Library) RecognizeShape(c stroke.Shape) (stroke.Result, bool) {
	l.mu.RLock()
	res, ok := stroke.RecognizeShape(c, l.templates)
	n := len(l.templates)
	l.mu.RUnlock()

	if ok {
		Logger().Debug("recognised", "command", res.Template.ID(), "similarity", res.Similarity, "templates", n)
	} else {
		Logger().Debug("no match", "vectors", c.Len(), "templates", n)
	}
	return res, ok
}

// Match is the outcome for one stroke of a batch.
type Match struct {
	Result stroke.Result
	OK     bool
}

// RecognizeAll recognises every stroke using at most workers goroutines.
// Matches are returned in input order. It fails only when ctx is done.
func (l *Library) RecognizeAll(ctx context.Context, strokes [][]stroke.Point, workers int) ([]Match, error) {
	matches := make([]Match, len(strokes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, points := range strokes {
		if ctx.Err() != nil {
			break
		}
		i, points := i, points
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, ok := l.Recognize(points)
			matches[i] = Match{Result: res, OK: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
