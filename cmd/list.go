package cmd

import (
	"fmt"

	gestures "github.com/ThatOtherAndrew/pincher/internal/gesture"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered gestures",
	Args:  cobra.NoArgs,
	RunE:  listGestures,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listGestures(cmd *cobra.Command, args []string) error {
	gestures, err := gestures.LoadGestures()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(gestures) == 0 {
		fmt.Fprintln(out, "No gestures registered")
		return nil
	}
	fmt.Fprintln(out, "Registered gestures:")
	for _, g := range gestures {
		fmt.Fprintf(out, "   %s (%d templates)\n", g.Command, len(g.Templates))
	}
	return nil
}
