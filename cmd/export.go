package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	gestures "github.com/ThatOtherAndrew/pincher/internal/gesture"
)

var formatFlag string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all learned gestures to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return gestures.Export(cmd.OutOrStdout(), formatFlag)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add gestures from an exported file, replacing ones with the same command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open import file")
		}
		defer f.Close()

		n, err := gestures.Import(f, formatFlag)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d gesture(s)\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	for _, c := range []*cobra.Command{exportCmd, importCmd} {
		c.Flags().StringVarP(&formatFlag, "format", "f", "json", "json or yaml")
	}
}
