package cmd

import (
	"fmt"

	gestures "github.com/ThatOtherAndrew/pincher/internal/gesture"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [gesture]",
	Short: "Remove a gesture by command name",
	Args:  cobra.ExactArgs(1),
	RunE:  removeGesture,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return gestureNames(), cobra.ShellCompDirectiveNoFileComp
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func removeGesture(cmd *cobra.Command, args []string) error {
	if err := gestures.RemoveGesture(args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Removed gesture:", args[0])
	return nil
}

func gestureNames() []string {
	gestures, err := gestures.LoadGestures()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(gestures))
	for _, g := range gestures {
		names = append(names, g.Command)
	}
	return names
}
