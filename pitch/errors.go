package pitch

import "github.com/pkg/errors"

var (
	// ErrFormat is returned by every parser in the package for malformed input.
	ErrFormat = errors.New("invalid pitch format")
	// ErrRange is returned when a value would fall outside its legal domain:
	// accidentals beyond double sharp or flat, octaves outside 0..9, pitches
	// outside C0..G9 or MIDI numbers outside 0..127.
	ErrRange = errors.New("out of range")
)
