package cmd

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/ThatOtherAndrew/pincher/internal/models"
	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

// readStrokes reads a JSON array of strokes, each an array of {"x","y"}
// points.
func readStrokes(path string) ([][]stroke.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var strokes [][]stroke.Point
	if err := json.Unmarshal(data, &strokes); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return strokes, nil
}

func readEvents(path string) ([]models.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return events, nil
}

// concat joins the strokes of one gesture into a single point sequence.
func concat(strokes [][]stroke.Point) []stroke.Point {
	var points []stroke.Point
	for _, s := range strokes {
		points = append(points, s...)
	}
	return points
}
