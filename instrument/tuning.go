package instrument

import (
	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/util"
	"github.com/pkg/errors"
)

var (
	ErrNoStrings   = errors.New("tuning has no strings")
	ErrNoFingering = errors.New("no fingering covers the chord")
)

// Tuning is the open pitch of each string in physical order, the thickest
// (usually lowest) string first.
type Tuning struct {
	ID         string
	Name       string
	Instrument string
	Strings    []pitch.Pitch
}

func NewTuning(id, name, instrument string, strings ...pitch.Pitch) (*Tuning, error) {
	if len(strings) == 0 {
		return nil, errors.Wrapf(ErrNoStrings, "tuning %q", id)
	}
	return &Tuning{
		ID:         id,
		Name:       name,
		Instrument: instrument,
		Strings:    append([]pitch.Pitch(nil), strings...),
	}, nil
}

// ParseTuning reads a comma separated pitch list such as "E2,A2,D3,G3,B3,E4".
func ParseTuning(id, name, instrument, list string) (*Tuning, error) {
	strings, err := pitch.ParsePitches(list)
	if err != nil {
		return nil, errors.Wrapf(err, "tuning %q", id)
	}
	return NewTuning(id, name, instrument, strings...)
}

// At is the pitch of string s stopped at fret, spelled per mode.
func (t *Tuning) At(s, fret int, mode pitch.AccidentalMode) (pitch.Pitch, error) {
	if s < 0 || s >= len(t.Strings) {
		return pitch.Pitch{}, errors.Wrapf(pitch.ErrRange, "tuning %q has no string %d", t.ID, s)
	}
	if fret < 0 {
		return pitch.Pitch{}, errors.Wrapf(pitch.ErrRange, "fret %d", fret)
	}
	return t.Strings[s].Transpose(fret, mode)
}

func (t *Tuning) String() string {
	return util.JoinStrings(t.Strings, ",")
}
