package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/pincher/internal/config"
	"github.com/ThatOtherAndrew/pincher/internal/execute"
	gestures "github.com/ThatOtherAndrew/pincher/internal/gesture"
	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

var recognizeOpts struct {
	perStroke     bool
	exec          bool
	workers       int
	minSimilarity float64
}

var recognizeCmd = &cobra.Command{
	Use:     "recognize <strokes.json>...",
	Aliases: []string{"recognise"},
	Short:   "Recognise recorded gestures",
	Long: `Recognise each file as one gesture, or each stroke on its own with
--per-stroke. With --exec the command bound to every match is started.`,
	Args: cobra.MinimumNArgs(1),
	RunE: recognizeGestures,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
	f := recognizeCmd.Flags()
	f.BoolVar(&recognizeOpts.perStroke, "per-stroke", false, "recognise every stroke separately")
	f.BoolVar(&recognizeOpts.exec, "exec", false, "run the command of each match")
	f.IntVar(&recognizeOpts.workers, "workers", 0, "parallel recognitions (default from settings)")
	f.Float64Var(&recognizeOpts.minSimilarity, "min-similarity", -1, "reject matches below this score (default from settings)")
}

func recognizeGestures(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	workers := settings.Workers
	if recognizeOpts.workers > 0 {
		workers = recognizeOpts.workers
	}
	minSimilarity := settings.MinSimilarity
	if recognizeOpts.minSimilarity >= 0 {
		minSimilarity = recognizeOpts.minSimilarity
	}

	saved, err := gestures.LoadGestures()
	if err != nil {
		return err
	}
	lib := gestures.NewLibrary(saved)
	log.Printf("Loaded %d gesture(s), %d template(s)", len(saved), lib.Len())

	var labels []string
	var inputs [][]stroke.Point
	for _, file := range args {
		strokes, err := readStrokes(file)
		if err != nil {
			return err
		}
		if !recognizeOpts.perStroke {
			labels = append(labels, file)
			inputs = append(inputs, concat(strokes))
			continue
		}
		for i, s := range strokes {
			labels = append(labels, fmt.Sprintf("%s[%d]", file, i))
			inputs = append(inputs, s)
		}
	}

	matches, err := lib.RecognizeAll(cmd.Context(), inputs, workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, m := range matches {
		if verbose {
			for _, s := range stroke.Rank(stroke.Resample(inputs[i]), lib.Templates()) {
				log.Printf("%s: template %s, best %.3f, total %.3f over %d", labels[i], s.Template.ID(), s.Best, s.Total, s.Compared)
			}
		}
		if !m.OK || m.Result.Similarity < minSimilarity {
			fmt.Fprintf(out, "%s: no match\n", labels[i])
			continue
		}
		fmt.Fprintf(out, "%s: %s (%.3f)\n", labels[i], m.Result.Template.ID(), m.Result.Similarity)

		if recognizeOpts.exec {
			if err := execute.Start(m.Result); err != nil {
				log.Printf("Failed to execute command: %v", err)
			} else {
				log.Printf("Executed: %s", m.Result.Template.ID())
			}
		}
	}
	return nil
}
