package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	gestures "github.com/ThatOtherAndrew/pincher/internal/gesture"
	"github.com/ThatOtherAndrew/pincher/internal/render"
	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

var renderOpts struct {
	gesture string
	index   int
	output  string
	size    int
}

var renderCmd = &cobra.Command{
	Use:   "render [strokes.json]",
	Short: "Draw recorded strokes or a learned gesture to a PNG",
	Args:  cobra.MaximumNArgs(1),
	RunE:  renderImage,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	f := renderCmd.Flags()
	f.StringVarP(&renderOpts.gesture, "gesture", "g", "", "render a learned gesture instead of a file")
	f.IntVar(&renderOpts.index, "template", 0, "which sample of the gesture to render")
	f.StringVarP(&renderOpts.output, "output", "o", "out.png", "output PNG file")
	f.IntVar(&renderOpts.size, "size", 256, "image width and height in pixels")
}

func renderImage(cmd *cobra.Command, args []string) error {
	opts := render.DefaultOptions()
	opts.Size = renderOpts.size

	var strokes [][]stroke.Point
	switch {
	case renderOpts.gesture != "":
		shape, err := learnedShape(renderOpts.gesture, renderOpts.index)
		if err != nil {
			return err
		}
		strokes = [][]stroke.Point{render.Polyline(shape)}
	case len(args) == 1:
		var err error
		if strokes, err = readStrokes(args[0]); err != nil {
			return err
		}
	default:
		return errors.New("need a strokes file or --gesture")
	}

	f, err := os.Create(renderOpts.output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer f.Close()

	if err := render.EncodePNG(f, render.Strokes(strokes, opts)); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return f.Close()
}

func learnedShape(command string, index int) (stroke.Shape, error) {
	saved, err := gestures.LoadGestures()
	if err != nil {
		return stroke.Shape{}, err
	}
	for _, g := range saved {
		if g.Command != command {
			continue
		}
		if index < 0 || index >= len(g.Templates) {
			return stroke.Shape{}, errors.Errorf("gesture %s has %d templates", command, len(g.Templates))
		}
		return g.Templates[index], nil
	}
	return stroke.Shape{}, errors.Wrap(gestures.ErrGestureNotFound, command)
}
