package models

import (
	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

// GestureConfig is one registered gesture: the shell command it triggers and
// the resampled samples it was learned from.
type GestureConfig struct {
	Command   string         `json:"command" yaml:"command"`
	Templates []stroke.Shape `json:"templates" yaml:"templates"`
}

type EventKind string

const (
	Press   EventKind = "press"
	Move    EventKind = "move"
	Release EventKind = "release"
	Cancel  EventKind = "cancel"
)

// Event is one recorded pointer event. T is milliseconds since the start of
// the recording.
type Event struct {
	Kind EventKind `json:"kind"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	T    int64     `json:"t"`
}
