package pitch

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// token is a note as written: a letter, an accidental and an optional single
// octave digit, e.g. "C", "Bb3", "f##", "E♭4".
type token struct {
	name       NoteName
	accidental Accidental
	octave     int
	hasOctave  bool
}

func splitToken(s string) (token, error) {
	var t token
	s = strings.TrimSpace(s)
	if s == "" {
		return t, errors.Wrap(ErrFormat, "empty note")
	}

	first, size := utf8.DecodeRuneInString(s)
	name, ok := noteNameFromRune(first)
	if !ok {
		return t, errors.Wrapf(ErrFormat, "%q: %q is not a note letter", s, first)
	}
	t.name = name
	rest := s[size:]

	end := 0
	for i, r := range rest {
		if !isAccidentalRune(r) {
			end = i
			break
		}
		end = i + utf8.RuneLen(r)
	}
	a, err := ParseAccidental(rest[:end])
	if err != nil {
		return t, errors.Wrapf(err, "%q", s)
	}
	t.accidental = a

	switch octave := rest[end:]; {
	case octave == "":
	case len(octave) == 1 && octave[0] >= '0' && octave[0] <= '9':
		t.octave = int(octave[0] - '0')
		t.hasOctave = true
	default:
		return t, errors.Wrapf(ErrFormat, "%q: bad octave %q", s, octave)
	}
	return t, nil
}
