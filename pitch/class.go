package pitch

import (
	"fmt"
	"strings"

	"github.com/jsphweid/harmonia/interval"
	"github.com/pkg/errors"
)

// Class is a pitch class: a position within the octave together with the
// letter and accidental it is spelled with. Equal and Compare only look at
// the position, so C# and Db are equal classes. The == operator compares
// spelling as well.
type Class struct {
	name       NoteName
	accidental Accidental
}

var (
	CFlat  = MustClass(NoteC, Flat)
	C      = MustClass(NoteC, Natural)
	CSharp = MustClass(NoteC, Sharp)
	DFlat  = MustClass(NoteD, Flat)
	D      = MustClass(NoteD, Natural)
	DSharp = MustClass(NoteD, Sharp)
	EFlat  = MustClass(NoteE, Flat)
	E      = MustClass(NoteE, Natural)
	ESharp = MustClass(NoteE, Sharp)
	FFlat  = MustClass(NoteF, Flat)
	F      = MustClass(NoteF, Natural)
	FSharp = MustClass(NoteF, Sharp)
	GFlat  = MustClass(NoteG, Flat)
	G      = MustClass(NoteG, Natural)
	GSharp = MustClass(NoteG, Sharp)
	AFlat  = MustClass(NoteA, Flat)
	A      = MustClass(NoteA, Natural)
	ASharp = MustClass(NoteA, Sharp)
	BFlat  = MustClass(NoteB, Flat)
	B      = MustClass(NoteB, Natural)
	BSharp = MustClass(NoteB, Sharp)
)

func fromSpelling(s spelling) Class {
	return Class{name: s.name, accidental: s.accidental}
}

// NewClass spells letter n with accidental a.
func NewClass(n NoteName, a Accidental) (Class, error) {
	if !n.valid() {
		return Class{}, errors.Wrapf(ErrRange, "note name %d", n)
	}
	if _, err := NewAccidental(int(a)); err != nil {
		return Class{}, err
	}
	s, ok := spellingAt(n.offset()+a.Semitones(), a)
	if !ok || s.name != n {
		panic(fmt.Sprintf("pitch: no spelling for %v%v", n, a))
	}
	return fromSpelling(s), nil
}

func MustClass(n NoteName, a Accidental) Class {
	c, err := NewClass(n, a)
	if err != nil {
		panic(err)
	}
	return c
}

// ClassFromIndex spells the enharmonic index, wrapped into 0..11, favoring a
// natural and then the accidentals chosen by mode.
func ClassFromIndex(index int, mode AccidentalMode) Class {
	return lookupNote(index, mode)
}

func lookupNote(index int, mode AccidentalMode) Class {
	for _, a := range modeSearch[mode] {
		if s, ok := spellingAt(index, a); ok {
			return fromSpelling(s)
		}
	}
	panic(fmt.Sprintf("pitch: enharmonic index %d has no %v spelling", mod(index, semitonesPerOctave), mode))
}

// AllClasses returns all 35 spellings ordered by index, then accidental.
func AllClasses() []Class {
	res := make([]Class, len(spellings))
	for i, s := range spellings {
		res[i] = fromSpelling(s)
	}
	return res
}

func (c Class) Name() NoteName         { return c.name }
func (c Class) Accidental() Accidental { return c.accidental }

// offset is the distance in semitones from the C of the letter's octave. It
// runs from -2 (Cbb) to 13 (B##).
func (c Class) offset() int {
	return c.name.offset() + c.accidental.Semitones()
}

// Index is the enharmonic index, 0 for C through 11 for B.
func (c Class) Index() int {
	return mod(c.offset(), semitonesPerOctave)
}

func (c Class) Equal(other Class) bool {
	return c.Index() == other.Index()
}

func (c Class) Compare(other Class) int {
	return c.Index() - other.Index()
}

// SameSpelling reports whether both classes use the same letter and accidental.
func (c Class) SameSpelling(other Class) bool {
	return c == other
}

// Enharmonic respells the class with letter n, if an accidental in range
// allows it.
func (c Class) Enharmonic(n NoteName) (Class, bool) {
	row := enharmonics[c.Index()]
	for _, r := range row {
		if r != noSpelling && spellings[r].name == n {
			return fromSpelling(spellings[r]), true
		}
	}
	return Class{}, false
}

// Enharmonics lists every spelling at the class's index, flattest first.
func (c Class) Enharmonics() []Class {
	var res []Class
	for _, r := range enharmonics[c.Index()] {
		if r != noSpelling {
			res = append(res, fromSpelling(spellings[r]))
		}
	}
	return res
}

// Respell picks the spelling mode would choose for the same index.
func (c Class) Respell(mode AccidentalMode) Class {
	return lookupNote(c.Index(), mode)
}

// Transpose moves the class by semitones. No letter is implied, so the result
// is spelled according to mode.
func (c Class) Transpose(semitones int, mode AccidentalMode) Class {
	return lookupNote(c.Index()+semitones, mode)
}

// Add moves the class up by iv and spells the result with the letter the
// interval's quantity calls for, so Eb plus a major third is G and never F##.
// When no accidental in range can reach that letter the mode decides.
func (c Class) Add(iv interval.Interval, mode AccidentalMode) Class {
	return c.steer(c.Transpose(iv.Semitones(), mode), c.name.Add(int(iv.Quantity())))
}

// Subtract moves the class down by iv, spelled like Add.
func (c Class) Subtract(iv interval.Interval, mode AccidentalMode) Class {
	return c.steer(c.Transpose(-iv.Semitones(), mode), c.name.Subtract(int(iv.Quantity())))
}

func (c Class) steer(naive Class, want NoteName) Class {
	if naive.name == want {
		return naive
	}
	if steered, ok := naive.Enharmonic(want); ok {
		return steered
	}
	return naive
}

// SemitonesTo is the distance walking up from c to other, 0..11.
func (c Class) SemitonesTo(other Class) int {
	return mod(other.Index()-c.Index(), semitonesPerOctave)
}

// IntervalTo names the interval from c up to other. The quantity comes from
// the letters and the quality from the semitones between them. It fails when
// the spellings are too far apart for any quality, as from E# to Fb.
func (c Class) IntervalTo(other Class) (interval.Interval, error) {
	q := interval.Quantity(c.name.StepsTo(other.name))
	semitones := c.SemitonesTo(other)
	if iv, err := interval.FromSemitones(q, semitones); err == nil {
		return iv, nil
	}
	// augmented sevenths wrap to 0
	iv, err := interval.FromSemitones(q, semitones+semitonesPerOctave)
	if err == nil {
		return iv, nil
	}
	// same letter, one semitone short of the octave: G up to Gb is a d8
	if q == interval.Unison {
		if iv, octErr := interval.FromSemitones(interval.Octave, semitones); octErr == nil {
			return iv, nil
		}
	}
	return interval.Interval{}, errors.Wrapf(err, "from %v to %v", c, other)
}

func (c Class) String() string {
	return c.name.String() + c.accidental.Symbol()
}

// Glyph renders the class with typeset accidentals, e.g. "E♭".
func (c Class) Glyph() string {
	if c.accidental == Natural {
		return c.name.String()
	}
	return c.name.String() + c.accidental.Glyph()
}

// ParseClass reads a letter followed by an accidental, e.g. "C", "eb", "F##",
// "B♭". An octave digit is not accepted.
func ParseClass(s string) (Class, error) {
	t, err := splitToken(s)
	if err != nil {
		return Class{}, err
	}
	if t.hasOctave {
		return Class{}, errors.Wrapf(ErrFormat, "%q: pitch class takes no octave", s)
	}
	return NewClass(t.name, t.accidental)
}

func TryParseClass(s string) (Class, bool) {
	c, err := ParseClass(s)
	return c, err == nil
}

// ParseClasses parses a comma separated list. One bad token fails the list.
func ParseClasses(s string) ([]Class, error) {
	var res []Class
	for _, tok := range strings.Split(s, ",") {
		c, err := ParseClass(tok)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func TryParseClasses(s string) ([]Class, bool) {
	res, err := ParseClasses(s)
	return res, err == nil
}
