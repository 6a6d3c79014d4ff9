package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <pitch>...",
	Short: "Names the chords a set of pitches spells",
	Long:  `Lists catalog chords matching the pitches, root position first: "identify E3 G3 C4".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := identify(strings.Join(args, ","))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(res.Matches) == 0 {
			_, err = fmt.Fprintln(out, "no match")
			return err
		}
		for _, m := range res.Matches {
			fmt.Fprintln(out, m.Label)
		}
		return nil
	},
}

func identify(list string) (model.IdentifyResponse, error) {
	tokens := util.SplitTokens(list)
	if len(tokens) == 0 {
		return model.IdentifyResponse{}, errors.Wrap(pitch.ErrFormat, "no notes")
	}
	notes := make([]pitch.Pitch, len(tokens))
	for i, tok := range tokens {
		n, err := pitch.ParsePitchMode(tok, mode)
		if err != nil {
			return model.IdentifyResponse{}, err
		}
		notes[i] = n
	}
	res := model.IdentifyResponse{
		Notes:   make([]string, len(notes)),
		Matches: []model.ChordMatch{},
	}
	for i, n := range notes {
		res.Notes[i] = n.String()
	}
	for _, m := range chord.Identify(cat.Chords(), notes) {
		res.Matches = append(res.Matches, model.ChordMatch{
			ID:        m.Chord.ID(),
			Label:     m.Label(),
			Root:      m.Root.String(),
			Inversion: m.Inversion,
		})
	}
	return res, nil
}
