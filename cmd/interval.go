package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <from> <to|interval>",
	Short: "Names an interval or applies one",
	Long: `With two notes, names the interval from the first up to the second:
"interval C E" or "interval B3 D5". With a note and an interval, transposes
the note: "interval Eb4 M3". Two pitches with octaves are always measured,
so "interval C4 A4" is a major sixth.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		_, bothPitches := pitch.TryParsePitches(args[0] + "," + args[1])
		if iv, ok := interval.TryParse(args[1]); ok && !bothPitches {
			res, err := transpose(args[0], iv)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%s + %s = %s\n", args[0], iv.Name(), res)
			return err
		}
		res, err := intervalBetween(args[0], args[1])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s -> %s: %s (%s, %d semitones)\n", res.From, res.To, res.Interval, res.Name, res.Semitones)
		return err
	},
}

func transpose(from string, iv interval.Interval) (fmt.Stringer, error) {
	if p, ok := pitch.TryParsePitchMode(from, mode); ok {
		return p.Add(iv, mode)
	}
	c, err := pitch.ParseClass(from)
	if err != nil {
		return nil, err
	}
	return c.Add(iv, mode), nil
}

// intervalBetween measures pitches when both carry octaves and classes
// otherwise.
func intervalBetween(from, to string) (model.IntervalResponse, error) {
	var iv interval.Interval
	a, okA := pitch.TryParsePitchMode(from, mode)
	b, okB := pitch.TryParsePitchMode(to, mode)
	if okA && okB {
		res, err := a.IntervalTo(b)
		if err != nil {
			return model.IntervalResponse{}, err
		}
		iv = res
		from, to = a.String(), b.String()
	} else {
		c, err := pitch.ParseClass(from)
		if err != nil {
			return model.IntervalResponse{}, err
		}
		d, err := pitch.ParseClass(to)
		if err != nil {
			return model.IntervalResponse{}, err
		}
		iv, err = c.IntervalTo(d)
		if err != nil {
			return model.IntervalResponse{}, err
		}
		from, to = c.String(), d.String()
	}
	return model.IntervalResponse{
		From:      from,
		To:        to,
		Interval:  iv.String(),
		Name:      iv.Name(),
		Quality:   iv.Quality().ShortName(),
		Semitones: iv.Semitones(),
	}, nil
}
