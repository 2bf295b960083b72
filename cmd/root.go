package cmd

import (
	"log"
	"log/slog"
	"os"

	gestures "github.com/ThatOtherAndrew/pincher/internal/gesture"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pincher",
	Short: "Recognise drawn gestures and run the commands bound to them",
	Long: `pincher matches freehand strokes against gestures you have taught it
and runs the shell command bound to the best match.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			gestures.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log recognition details to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
