package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:       "list [scales|chords|tunings]",
	Short:     "Lists the catalog",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"scales", "chords", "tunings"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := []string{"scales", "chords", "tunings"}
		if len(args) == 1 {
			kinds = args
		}
		out := cmd.OutOrStdout()
		for _, kind := range kinds {
			var ids []string
			switch kind {
			case "scales":
				ids = cat.ScaleIDs()
			case "chords":
				ids = cat.ChordIDs()
			case "tunings":
				ids = cat.TuningIDs()
			default:
				return errors.Errorf("unknown catalog section %q", kind)
			}
			fmt.Fprintf(out, "%s:\n  %s\n", kind, strings.Join(ids, "\n  "))
		}
		return nil
	},
}
