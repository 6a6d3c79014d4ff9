package pitch

import (
	"strings"

	"github.com/pkg/errors"
)

// Accidental alters a letter by -2..+2 semitones. Values outside that range
// can't be built through the exported API.
type Accidental int8

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

const accidentalCount = 5

// indexed by accidental + 2
var (
	accidentalSymbols = [accidentalCount]string{"bb", "b", "", "#", "##"}
	accidentalGlyphs  = [accidentalCount]string{"𝄫", "♭", "♮", "♯", "𝄪"}
	accidentalNames   = [accidentalCount]string{"Double Flat", "Flat", "Natural", "Sharp", "Double Sharp"}
)

// NewAccidental returns ErrRange for values beyond a double sharp or flat.
func NewAccidental(semitones int) (Accidental, error) {
	if semitones < int(DoubleFlat) || semitones > int(DoubleSharp) {
		return 0, errors.Wrapf(ErrRange, "accidental %+d", semitones)
	}
	return Accidental(semitones), nil
}

func (a Accidental) Semitones() int {
	return int(a)
}

func (a Accidental) Add(steps int) (Accidental, error) {
	return NewAccidental(int(a) + steps)
}

func (a Accidental) Subtract(steps int) (Accidental, error) {
	return NewAccidental(int(a) - steps)
}

func (a Accidental) column() int {
	return int(a) + 2
}

// Symbol is the ASCII notation: "bb", "b", "", "#" or "##".
func (a Accidental) Symbol() string {
	return accidentalSymbols[a.column()]
}

// Glyph is the typeset notation, with ♮ for natural.
func (a Accidental) Glyph() string {
	return accidentalGlyphs[a.column()]
}

func (a Accidental) Name() string {
	return accidentalNames[a.column()]
}

func (a Accidental) String() string {
	return a.Symbol()
}

const maxAccidentalRunes = 2

// ParseAccidental reads up to two of b, B, ♭, # and ♯, summing flats as -1 and
// sharps as +1. The empty string and a lone ♮ are natural. A sharp and a flat
// that cancel out are rejected: natural can only be written as such.
func ParseAccidental(s string) (Accidental, error) {
	if s == "" || s == "♮" {
		return Natural, nil
	}

	runes := []rune(s)
	if len(runes) > maxAccidentalRunes {
		return 0, errors.Wrapf(ErrFormat, "accidental %q is longer than %d", s, maxAccidentalRunes)
	}

	sum := 0
	for _, r := range runes {
		switch r {
		case 'b', 'B', '♭':
			sum--
		case '#', '♯':
			sum++
		case '♮':
			return 0, errors.Wrapf(ErrFormat, "accidental %q: natural must stand alone", s)
		default:
			return 0, errors.Wrapf(ErrFormat, "accidental %q: unexpected %q", s, r)
		}
	}
	if sum == 0 {
		return 0, errors.Wrapf(ErrFormat, "accidental %q cancels out", s)
	}
	return Accidental(sum), nil
}

func TryParseAccidental(s string) (Accidental, bool) {
	a, err := ParseAccidental(s)
	return a, err == nil
}

func isAccidentalRune(r rune) bool {
	return strings.ContainsRune("bB#♭♯♮", r)
}
