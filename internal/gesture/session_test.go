package gestures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOtherAndrew/pincher/internal/config"
	"github.com/ThatOtherAndrew/pincher/internal/models"
	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func plusLibrary(t *testing.T) *Library {
	t.Helper()
	plus := shapeOf(t,
		stroke.Point{X: 0, Y: 50}, stroke.Point{X: 100, Y: 50},
		stroke.Point{X: 50, Y: 0}, stroke.Point{X: 50, Y: 100},
	)
	right := shapeOf(t, stroke.Point{X: 0, Y: 0}, stroke.Point{X: 100, Y: 0})
	return NewLibrary([]models.GestureConfig{
		{Command: "right", Templates: []stroke.Shape{right}},
		{Command: "plus", Templates: []stroke.Shape{plus}},
	})
}

func drawLine(s *Session, from, to stroke.Point, start int) {
	s.Press(from, at(start))
	for i := 1; i <= 10; i++ {
		f := float64(i) / 10
		s.Move(stroke.Point{X: from.X + (to.X-from.X)*f, Y: from.Y + (to.Y-from.Y)*f}, at(start+i))
	}
	s.Release(at(start + 10))
}

func testConfig() SessionConfig {
	return SessionConfig{
		MultipleStrokes:  true,
		StrokeTimeout:    200 * time.Millisecond,
		MinPoints:        5,
		MinPointDistance: 2,
		MaxPoints:        2048,
	}
}

func TestSessionSingleStroke(t *testing.T) {
	cfg := testConfig()
	cfg.MultipleStrokes = false
	s := NewSession(plusLibrary(t), cfg)
	assert.Equal(t, Possible, s.State())

	s.Press(stroke.Point{X: 0, Y: 0}, at(0))
	assert.Equal(t, Began, s.State())
	s.Move(stroke.Point{X: 30, Y: 0}, at(1))
	assert.Equal(t, Changed, s.State())
	for i := 2; i <= 6; i++ {
		s.Move(stroke.Point{X: float64(30 * i), Y: 0}, at(i))
	}
	s.Release(at(7))

	assert.Equal(t, Ended, s.State())
	res, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, "right", res.Template.ID())
}

func TestSessionMultiStrokeTimeout(t *testing.T) {
	s := NewSession(plusLibrary(t), testConfig())

	drawLine(s, stroke.Point{X: 0, Y: 50}, stroke.Point{X: 100, Y: 50}, 0)
	assert.True(t, s.Pending())
	assert.False(t, s.Update(at(100)))

	drawLine(s, stroke.Point{X: 50, Y: 0}, stroke.Point{X: 50, Y: 100}, 150)
	assert.False(t, s.Update(at(300)), "second press restarted the timeout")
	assert.Equal(t, Changed, s.State())
	assert.Len(t, s.Points(), 22)

	assert.True(t, s.Update(at(360)))
	assert.Equal(t, Ended, s.State())
	res, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, "plus", res.Template.ID())
	assert.False(t, s.Update(at(1000)))
}

func TestSessionPressAfterEndStartsOver(t *testing.T) {
	s := NewSession(plusLibrary(t), testConfig())
	drawLine(s, stroke.Point{X: 0, Y: 0}, stroke.Point{X: 100, Y: 0}, 0)
	require.True(t, s.Update(at(500)))
	require.Equal(t, Ended, s.State())

	s.Press(stroke.Point{X: 7, Y: 7}, at(600))
	assert.Equal(t, Began, s.State())
	assert.Equal(t, []stroke.Point{{X: 7, Y: 7}}, s.Points())
	_, ok := s.Result()
	assert.False(t, ok)
}

func TestSessionTooShort(t *testing.T) {
	cfg := testConfig()
	cfg.MultipleStrokes = false
	s := NewSession(plusLibrary(t), cfg)

	s.Press(stroke.Point{X: 0, Y: 0}, at(0))
	s.Move(stroke.Point{X: 1, Y: 0}, at(1))
	s.Move(stroke.Point{X: 50, Y: 0}, at(2))
	s.Release(at(3))

	assert.Equal(t, Failed, s.State())
	assert.Len(t, s.Points(), 2, "move within min distance is dropped")
}

func TestSessionMinSimilarity(t *testing.T) {
	cfg := testConfig()
	cfg.MultipleStrokes = false
	cfg.MinSimilarity = 14
	s := NewSession(plusLibrary(t), cfg)

	drawLine(s, stroke.Point{X: 0, Y: 0}, stroke.Point{X: 100, Y: 100}, 0)
	assert.Equal(t, Failed, s.State())
}

func TestSessionCancel(t *testing.T) {
	s := NewSession(plusLibrary(t), testConfig())
	drawLine(s, stroke.Point{X: 0, Y: 0}, stroke.Point{X: 100, Y: 0}, 0)
	s.Cancel()

	assert.Equal(t, Cancelled, s.State())
	assert.Empty(t, s.Points())
	assert.False(t, s.Update(at(1000)))
}

func TestSessionMaxPoints(t *testing.T) {
	cfg := testConfig()
	cfg.MaxPoints = 4
	cfg.MinPoints = 1
	s := NewSession(plusLibrary(t), cfg)

	drawLine(s, stroke.Point{X: 0, Y: 0}, stroke.Point{X: 100, Y: 0}, 0)
	assert.Equal(t, []stroke.Point{{X: 70, Y: 0}, {X: 80, Y: 0}, {X: 90, Y: 0}, {X: 100, Y: 0}}, s.Points())
}

func TestSessionIgnoresMoveWithoutPress(t *testing.T) {
	s := NewSession(plusLibrary(t), testConfig())
	s.Move(stroke.Point{X: 1, Y: 1}, at(0))
	s.Release(at(1))
	assert.Equal(t, Possible, s.State())
	assert.Empty(t, s.Points())
	assert.False(t, s.Pending())
}

func TestSessionConfigFrom(t *testing.T) {
	cfg := SessionConfigFrom(config.Defaults())
	assert.True(t, cfg.MultipleStrokes)
	assert.Equal(t, 200*time.Millisecond, cfg.StrokeTimeout)
	assert.Equal(t, 5, cfg.MinPoints)
	assert.Equal(t, 2048, cfg.MaxPoints)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "cancelled", Cancelled.String())
	assert.Equal(t, "unknown", State(42).String())
}
