package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/util"
	"github.com/spf13/cobra"
)

var pitchGlyphs bool

func init() {
	pitchCmd.Flags().BoolVarP(&pitchGlyphs, "glyphs", "g", false, "print accidentals as ♯ and ♭")
	rootCmd.AddCommand(pitchCmd)
}

var pitchCmd = &cobra.Command{
	Use:   "pitch <note>...",
	Short: "Describes pitches and pitch classes",
	Long: `Describes each argument: a pitch such as "Eb4" or "61" prints its MIDI
number and frequency, a pitch class such as "F#" prints its enharmonic
spellings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, tok := range util.SplitTokens(strings.Join(args, " ")) {
			if err := describe(cmd.OutOrStdout(), tok); err != nil {
				return err
			}
		}
		return nil
	},
}

func describe(w io.Writer, tok string) error {
	if p, ok := pitch.TryParsePitchMode(tok, mode); ok {
		name := spell(p.Class()) + strconv.Itoa(p.Octave())
		_, err := fmt.Fprintf(w, "%-5s midi %3d  %8.2f Hz\n", name, p.Midi(), p.Frequency())
		return err
	}
	c, err := pitch.ParseClass(tok)
	if err != nil {
		return err
	}
	enharmonics := c.Enharmonics()
	names := make([]string, len(enharmonics))
	for i, e := range enharmonics {
		names[i] = spell(e)
	}
	_, err = fmt.Fprintf(w, "%-5s index %2d  %s\n", spell(c), c.Index(), strings.Join(names, " "))
	return err
}

func spell(c pitch.Class) string {
	if pitchGlyphs {
		return c.Glyph()
	}
	return c.String()
}
