package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/pincher/internal/config"
	gestures "github.com/ThatOtherAndrew/pincher/internal/gesture"
	"github.com/ThatOtherAndrew/pincher/internal/models"
	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

var replayCmd = &cobra.Command{
	Use:   "replay <events.json>",
	Short: "Replay recorded pointer events through the gesture recogniser",
	Long: `Replay a JSON array of {"kind","x","y","t"} events, where kind is press,
move, release or cancel and t is milliseconds since the recording started.
Strokes separated by less than the stroke timeout form one gesture.`,
	Args: cobra.ExactArgs(1),
	RunE: replayEvents,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func replayEvents(cmd *cobra.Command, args []string) error {
	events, err := readEvents(args[0])
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	saved, err := gestures.LoadGestures()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	session := gestures.NewSession(gestures.NewLibrary(saved), gestures.SessionConfigFrom(settings))
	report := func() {
		if res, ok := session.Result(); ok {
			fmt.Fprintf(out, "%s (%.3f)\n", res.Template.ID(), res.Similarity)
		} else {
			fmt.Fprintln(out, "no match")
		}
	}

	var start time.Time
	var now time.Time
	for _, ev := range events {
		now = start.Add(time.Duration(ev.T) * time.Millisecond)
		if session.Update(now) {
			report()
		}
		p := stroke.Point{X: ev.X, Y: ev.Y}
		switch ev.Kind {
		case models.Press:
			session.Press(p, now)
		case models.Move:
			session.Move(p, now)
		case models.Release:
			active := session.State() == gestures.Began || session.State() == gestures.Changed
			session.Release(now)
			if active && !session.Pending() {
				report()
			}
		case models.Cancel:
			session.Cancel()
			fmt.Fprintln(out, "cancelled")
		default:
			return errors.Errorf("unknown event kind %q", ev.Kind)
		}
	}
	if session.Update(now.Add(settings.StrokeTimeout())) {
		report()
	}
	return nil
}
