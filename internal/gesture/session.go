package gestures

import (
	"time"

	"github.com/ThatOtherAndrew/pincher/internal/config"
	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

type State int

const (
	Possible State = iota
	Began
	Changed
	Ended
	Failed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Possible:
		return "possible"
	case Began:
		return "began"
	case Changed:
		return "changed"
	case Ended:
		return "ended"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

type SessionConfig struct {
	// MultipleStrokes waits StrokeTimeout after a release before
	// recognising, so that another press continues the same gesture.
	MultipleStrokes bool
	StrokeTimeout   time.Duration
	// Gestures with fewer points fail without being recognised.
	MinPoints int
	// Moves closer than this to the previous point are dropped.
	MinPointDistance float64
	// Only the most recent MaxPoints points are kept.
	MaxPoints int
	// Matches scoring below this fail.
	MinSimilarity float64
}

func SessionConfigFrom(s *config.Settings) SessionConfig {
	return SessionConfig{
		MultipleStrokes:  s.MultipleStrokes,
		StrokeTimeout:    s.StrokeTimeout(),
		MinPoints:        s.MinPoints,
		MinPointDistance: s.MinPointDistance,
		MaxPoints:        s.MaxPoints,
		MinSimilarity:    s.MinSimilarity,
	}
}

// Session collects the strokes of one gesture from press, move and release
// events and recognises them once the gesture is complete. Every stroke of a
// multi-stroke gesture is concatenated into a single point sequence.
//
// Time only advances through the timestamps passed in, so a frame loop calls
// Update once per frame to let a pending recognition fire. A Session is not
// safe for concurrent use.
type Session struct {
	lib *Library
	cfg SessionConfig

	state    State
	points   []stroke.Point
	pending  bool
	deadline time.Time
	result   stroke.Result
	matched  bool
}

func NewSession(lib *Library, cfg SessionConfig) *Session {
	return &Session{lib: lib, cfg: cfg}
}

func (s *Session) State() State {
	return s.state
}

// Result returns the match of the last recognition, if there was one.
func (s *Session) Result() (stroke.Result, bool) {
	return s.result, s.matched
}

func (s *Session) Points() []stroke.Point {
	return append([]stroke.Point(nil), s.points...)
}

// Pending reports whether a recognition is waiting for the stroke timeout.
func (s *Session) Pending() bool {
	return s.pending
}

func (s *Session) Reset() {
	s.state = Possible
	s.points = nil
	s.pending = false
	s.deadline = time.Time{}
	s.result = stroke.Result{}
	s.matched = false
}

func (s *Session) Press(p stroke.Point, now time.Time) {
	switch s.state {
	case Ended, Failed, Cancelled:
		s.Reset()
	}
	s.pending = false
	s.addPoint(p)
	if s.state == Possible {
		s.state = Began
	}
}

func (s *Session) Move(p stroke.Point, now time.Time) {
	if s.state != Began && s.state != Changed {
		return
	}
	last := s.points[len(s.points)-1]
	dx, dy := p.X-last.X, p.Y-last.Y
	if dx*dx+dy*dy <= s.cfg.MinPointDistance*s.cfg.MinPointDistance && s.cfg.MinPointDistance > 0 {
		return
	}
	s.addPoint(p)
	s.state = Changed
}

func (s *Session) Release(now time.Time) {
	if s.state != Began && s.state != Changed {
		return
	}
	if s.cfg.MultipleStrokes {
		s.pending = true
		s.deadline = now.Add(s.cfg.StrokeTimeout)
		return
	}
	s.recognize()
}

// Update fires a pending recognition whose timeout has elapsed by now. It
// reports whether a recognition ran.
func (s *Session) Update(now time.Time) bool {
	if !s.pending || now.Before(s.deadline) {
		return false
	}
	s.recognize()
	return true
}

func (s *Session) Cancel() {
	s.points = nil
	s.pending = false
	s.state = Cancelled
}

func (s *Session) addPoint(p stroke.Point) {
	s.points = append(s.points, p)
	if s.cfg.MaxPoints > 0 && len(s.points) > s.cfg.MaxPoints {
		s.points = s.points[len(s.points)-s.cfg.MaxPoints:]
	}
}

func (s *Session) recognize() {
	s.pending = false
	s.result, s.matched = stroke.Result{}, false

	if len(s.points) < s.cfg.MinPoints {
		Logger().Info("gesture too short, ignoring", "points", len(s.points), "min", s.cfg.MinPoints)
		s.state = Failed
		return
	}

	res, ok := s.lib.Recognize(s.points)
	if !ok || res.Similarity < s.cfg.MinSimilarity {
		Logger().Info("no confident match", "similarity", res.Similarity, "min", s.cfg.MinSimilarity)
		s.state = Failed
		return
	}

	s.result, s.matched = res, true
	s.state = Ended
}
