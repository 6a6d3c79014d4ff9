package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	scaleOctaves int
	scaleMode    int
)

func init() {
	scaleCmd.Flags().IntVarP(&scaleOctaves, "octaves", "o", 1, "number of octaves to spell")
	scaleCmd.Flags().IntVarP(&scaleMode, "mode", "m", 1, "start on this degree of the scale")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <scale> [root]",
	Short: "Spells a scale",
	Long: `Spells a catalog scale from root (default C4), e.g. "scale dorian D3" or
"scale major Eb --mode 6".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := ""
		if len(args) == 2 {
			root = args[1]
		}
		res, err := buildScale(args[0], root, scaleOctaves, scaleMode)
		if err != nil {
			return err
		}

		names := make([]string, len(res.Pitches))
		for i, p := range res.Pitches {
			names[i] = p.Name
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%s)\n", res.Root, res.Name, strings.Join(res.Intervals, " "))
		_, err = fmt.Fprintln(out, strings.Join(names, " "))
		return err
	},
}
