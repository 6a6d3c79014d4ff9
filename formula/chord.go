package formula

import (
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
)

var ErrChordSize = errors.New("chord needs at least two distinct intervals")

// Chord is a formula of two or more intervals with a display symbol, like
// "m7" for the minor seventh chord.
type Chord struct {
	*Formula
	symbol  string
	aliases []string
}

func NewChord(id, name, symbol string, intervals ...interval.Interval) (*Chord, error) {
	f, err := New(id, name, intervals...)
	if err != nil {
		return nil, err
	}
	if f.Len() < 2 {
		return nil, errors.Wrapf(ErrChordSize, "chord %q", id)
	}
	return &Chord{Formula: f, symbol: symbol}, nil
}

func ParseChord(id, name, symbol, list string) (*Chord, error) {
	intervals, err := interval.ParseList(list)
	if err != nil {
		return nil, errors.Wrapf(err, "chord %q", id)
	}
	return NewChord(id, name, symbol, intervals...)
}

// WithAliases returns a copy of c known by the extra names too.
func (c *Chord) WithAliases(aliases ...string) *Chord {
	res := *c
	res.aliases = append([]string(nil), aliases...)
	return &res
}

func (c *Chord) Aliases() []string {
	return append([]string(nil), c.aliases...)
}

func (c *Chord) Symbol() string {
	return c.symbol
}

// Label names the chord on root, e.g. "Cm7".
func (c *Chord) Label(root pitch.Class) string {
	return root.String() + c.symbol
}

// Voicing stacks one pitch per interval above root. inversion rotates the
// lowest intervals an octave up: 1 puts the second chord tone in the bass.
func (c *Chord) Voicing(root pitch.Pitch, inversion int, mode pitch.AccidentalMode) ([]pitch.Pitch, error) {
	if inversion < 0 || inversion >= c.Len() {
		return nil, errors.Wrapf(pitch.ErrRange, "chord %q has no inversion %d", c.id, inversion)
	}
	res := make([]pitch.Pitch, 0, c.Len())
	for p := range c.GenerateFrom(root, inversion, mode) {
		res = append(res, p)
		if len(res) == c.Len() {
			return res, nil
		}
	}
	return nil, errors.Wrapf(pitch.ErrRange, "chord %q on %v runs past %v", c.id, root, pitch.MaxPitch)
}
