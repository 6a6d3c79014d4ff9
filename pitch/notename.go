package pitch

import (
	"strings"

	"github.com/pkg/errors"
)

// NoteName is one of the seven letters, C through B.
type NoteName int8

const (
	NoteC NoteName = iota
	NoteD
	NoteE
	NoteF
	NoteG
	NoteA
	NoteB
)

const letterCount = 7

var letters = [letterCount]string{"C", "D", "E", "F", "G", "A", "B"}

// whole and half steps of the white keys, starting from C
var letterSteps = [letterCount]int{2, 2, 1, 2, 2, 2, 1}

// semitones above C of each natural letter
var naturalOffsets = [letterCount]int{0, 2, 4, 5, 7, 9, 11}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

// Add moves steps letters forward, wrapping around after B.
func (n NoteName) Add(steps int) NoteName {
	return NoteName(mod(int(n)+steps, letterCount))
}

func (n NoteName) Subtract(steps int) NoteName {
	return n.Add(-steps)
}

// StepsTo counts letters walking forward from n to other, 0..6.
func (n NoteName) StepsTo(other NoteName) int {
	return mod(int(other)-int(n), letterCount)
}

// IntervalBetween walks forward from n to other over the white keys and
// returns the semitones covered. Equal letters give 0.
func (n NoteName) IntervalBetween(other NoteName) int {
	total := 0
	for cur := n; cur != other; cur = cur.Add(1) {
		total += letterSteps[cur]
	}
	return total
}

// semitones above C of the unaltered letter
func (n NoteName) offset() int {
	return naturalOffsets[n]
}

func (n NoteName) valid() bool {
	return n >= NoteC && n <= NoteB
}

func (n NoteName) String() string {
	if !n.valid() {
		return "?"
	}
	return letters[n]
}

func noteNameFromRune(r rune) (NoteName, bool) {
	i := strings.IndexRune("CDEFGAB", r)
	if i < 0 {
		i = strings.IndexRune("cdefgab", r)
	}
	if i < 0 {
		return 0, false
	}
	return NoteName(i), true
}

// ParseNoteName reads the letter from the first character of s, ignoring
// case.
func ParseNoteName(s string) (NoteName, error) {
	for _, r := range s {
		if n, ok := noteNameFromRune(r); ok {
			return n, nil
		}
		return 0, errors.Wrapf(ErrFormat, "%q is not a note letter", r)
	}
	return 0, errors.Wrap(ErrFormat, "empty note name")
}

func TryParseNoteName(s string) (NoteName, bool) {
	n, err := ParseNoteName(s)
	return n, err == nil
}
