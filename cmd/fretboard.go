package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/harmonia/instrument"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/spf13/cobra"
)

var (
	fretCount   int
	fretChord   bool
	fretSpan    int
	fretMaxFret int
)

func init() {
	fretboardCmd.Flags().IntVarP(&fretCount, "frets", "f", 12, "number of frets to draw")
	fretboardCmd.Flags().BoolVarP(&fretChord, "chord", "c", false, "print a chord fingering instead of the board")
	fretboardCmd.Flags().IntVar(&fretSpan, "span", defaultSpan, "frets the hand can cover in a fingering")
	fretboardCmd.Flags().IntVar(&fretMaxFret, "max-fret", defaultMaxFret, "highest fret a fingering may use")
	rootCmd.AddCommand(fretboardCmd)
}

var fretboardCmd = &cobra.Command{
	Use:   "fretboard <tuning> <scale|chord> <root>",
	Short: "Draws a scale or chord on a fretted instrument",
	Long: `Marks every note of a scale or chord on the neck, e.g.
"fretboard guitar minor-pentatonic A". With --chord, finds a playable shape.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if fretChord {
			res, err := buildFingering(args[0], args[1], args[2], fretSpan, fretMaxFret)
			if err != nil {
				return err
			}
			frets := make([]string, len(res.Frets))
			for i, f := range res.Frets {
				if f == instrument.Muted {
					frets[i] = "x"
				} else {
					frets[i] = strconv.Itoa(f)
				}
			}
			fmt.Fprintf(out, "%s on %s: %s\n", res.Chord, res.Tuning, strings.Join(frets, " "))
			_, err = fmt.Fprintln(out, strings.Join(res.Notes, " "))
			return err
		}

		t, err := cat.Tuning(args[0])
		if err != nil {
			return err
		}
		f, err := cat.Formula(args[1])
		if err != nil {
			return err
		}
		root, err := pitch.ParseClass(args[2])
		if err != nil {
			return err
		}
		board, err := instrument.Fretboard(t, f.Classes(root, mode), fretCount, mode)
		if err != nil {
			return err
		}
		return instrument.Render(out, board)
	},
}
