package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chordInversion int

func init() {
	chordCmd.Flags().IntVarP(&chordInversion, "inversion", "i", 0, "put this chord tone (0 = root) in the bass")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <chord> [root]",
	Short: "Spells a chord voicing",
	Long:  `Voices a catalog chord upward from root (default C4): "chord m7 D3 -i 1".`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := ""
		if len(args) == 2 {
			root = args[1]
		}
		res, err := buildChord(args[0], root, chordInversion)
		if err != nil {
			return err
		}

		names := make([]string, len(res.Pitches))
		for i, p := range res.Pitches {
			names[i] = p.Name
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Label, strings.Join(names, " "))
		return err
	},
}
