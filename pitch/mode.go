package pitch

import (
	"strings"

	"github.com/pkg/errors"
)

// AccidentalMode picks the spelling of a semitone position when nothing else
// decides it, e.g. whether 6 semitones above C reads F# or Gb. It is passed
// explicitly to every operation that needs it.
type AccidentalMode int8

const (
	FavorSharps AccidentalMode = iota
	FavorFlats
)

// accidental columns to try, in order, for each mode
var modeSearch = [...][3]Accidental{
	FavorSharps: {Natural, Sharp, DoubleSharp},
	FavorFlats:  {Natural, Flat, DoubleFlat},
}

func (m AccidentalMode) String() string {
	if m == FavorFlats {
		return "flats"
	}
	return "sharps"
}

// ParseAccidentalMode accepts "sharps"/"flats" and the symbols "#"/"b".
func ParseAccidentalMode(s string) (AccidentalMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sharps", "sharp", "#":
		return FavorSharps, nil
	case "flats", "flat", "b":
		return FavorFlats, nil
	}
	return 0, errors.Wrapf(ErrFormat, "unknown accidental mode %q", s)
}
