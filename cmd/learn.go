package cmd

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	gestures "github.com/ThatOtherAndrew/pincher/internal/gesture"
	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

var learnCmd = &cobra.Command{
	Use:   "learn <command> <sample.json>...",
	Short: "Learn a gesture for a command from recorded samples",
	Long: `Learn a gesture for a command. Each sample file holds one drawing of the
gesture as a JSON array of strokes; the strokes of a sample are joined in
order. Learning a command again replaces its samples.`,
	Args: cobra.MinimumNArgs(2),
	RunE: learnGesture,
}

func init() {
	rootCmd.AddCommand(learnCmd)
}

func learnGesture(cmd *cobra.Command, args []string) error {
	command, files := args[0], args[1:]

	var templates []stroke.Shape
	for i, file := range files {
		strokes, err := readStrokes(file)
		if err != nil {
			return err
		}
		tmpl, ok := stroke.CreateTemplate(command, concat(strokes))
		if !ok || tmpl.Shape().Len() == 0 {
			return errors.Errorf("%s: sample has no length", file)
		}
		templates = append(templates, tmpl.Shape())
		log.Printf("Captured gesture %d/%d", i+1, len(files))
	}

	if err := gestures.SaveGesture(command, templates); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Gesture saved for command:", command)
	return nil
}
