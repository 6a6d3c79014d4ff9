package pitch

import (
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/harmonia/interval"
	"github.com/pkg/errors"
)

const (
	MinOctave = 0
	MaxOctave = 9

	// MinValue and MaxValue bound Absolute: C0 through G9.
	MinValue = 0
	MaxValue = MaxOctave*semitonesPerOctave + 7

	// C0 sits at MIDI note 12.
	midiOffset = 12
	maxMidi    = 127

	concertPitch = 440.0
)

// Pitch is a pitch class in a given octave. Octaves follow scientific pitch
// notation and belong to the letter, so B#4 sounds the same as C5.
type Pitch struct {
	class  Class
	octave int
}

var (
	MinPitch = MustPitch(C, MinOctave)
	MaxPitch = MustPitch(G, MaxOctave)
	MiddleC  = MustPitch(C, 4)
	A4       = MustPitch(A, 4)
)

// NewPitch places c in octave, failing with ErrRange when the octave is
// outside 0..9 or the result is outside C0..G9.
func NewPitch(c Class, octave int) (Pitch, error) {
	if octave < MinOctave || octave > MaxOctave {
		return Pitch{}, errors.Wrapf(ErrRange, "octave %d", octave)
	}
	p := Pitch{class: c, octave: octave}
	if abs := p.Absolute(); abs < MinValue || abs > MaxValue {
		return Pitch{}, errors.Wrapf(ErrRange, "pitch %v", p)
	}
	return p, nil
}

func MustPitch(c Class, octave int) Pitch {
	p, err := NewPitch(c, octave)
	if err != nil {
		panic(err)
	}
	return p
}

// place spells the absolute position abs with c, deriving the octave from
// the spelling so that B#4 and C5 both land on 60.
func place(c Class, abs int) (Pitch, error) {
	if abs < MinValue || abs > MaxValue {
		return Pitch{}, errors.Wrapf(ErrRange, "absolute pitch %d", abs)
	}
	return NewPitch(c, (abs-c.offset())/semitonesPerOctave)
}

// FromAbsolute spells the absolute position according to mode.
func FromAbsolute(abs int, mode AccidentalMode) (Pitch, error) {
	return place(lookupNote(abs, mode), abs)
}

// FromMidi converts a MIDI note number. Numbers below 12 are valid MIDI but
// fall under C0 and fail with ErrRange too.
func FromMidi(n int, mode AccidentalMode) (Pitch, error) {
	if n < 0 || n > maxMidi {
		return Pitch{}, errors.Wrapf(ErrRange, "midi note %d", n)
	}
	return FromAbsolute(n-midiOffset, mode)
}

func (p Pitch) Class() Class { return p.class }
func (p Pitch) Octave() int  { return p.octave }

// Absolute counts semitones up from C0.
func (p Pitch) Absolute() int {
	return p.octave*semitonesPerOctave + p.class.offset()
}

func (p Pitch) Midi() int {
	return p.Absolute() + midiOffset
}

// Frequency in Hz, equal tempered around A4 = 440.
func (p Pitch) Frequency() float64 {
	return concertPitch * math.Pow(2, float64(p.Absolute()-A4.Absolute())/semitonesPerOctave)
}

// Transpose moves the pitch by semitones, spelling the result per mode.
func (p Pitch) Transpose(semitones int, mode AccidentalMode) (Pitch, error) {
	return FromAbsolute(p.Absolute()+semitones, mode)
}

// Add moves the pitch up by iv. The class is spelled as Class.Add spells it
// and the octave follows from the new position.
func (p Pitch) Add(iv interval.Interval, mode AccidentalMode) (Pitch, error) {
	return place(p.class.Add(iv, mode), p.Absolute()+iv.Semitones())
}

func (p Pitch) Subtract(iv interval.Interval, mode AccidentalMode) (Pitch, error) {
	return place(p.class.Subtract(iv, mode), p.Absolute()-iv.Semitones())
}

// AddOctaves keeps the spelling and shifts the octave by n.
func (p Pitch) AddOctaves(n int) (Pitch, error) {
	return NewPitch(p.class, p.octave+n)
}

// staff position in letters up from C0
func (p Pitch) degree() int {
	return p.octave*letterCount + int(p.class.name)
}

// IntervalTo names the interval from p up to other, compound intervals
// included. other must not be lower than p.
func (p Pitch) IntervalTo(other Pitch) (interval.Interval, error) {
	steps := other.degree() - p.degree()
	semitones := other.Absolute() - p.Absolute()
	if steps < 0 || semitones < 0 {
		return interval.Interval{}, errors.Wrapf(interval.ErrInvalid, "%v is below %v", other, p)
	}
	if steps > int(interval.Fourteenth) {
		return interval.Interval{}, errors.Wrapf(interval.ErrInvalid, "%v to %v spans more than two octaves", p, other)
	}
	return interval.FromSemitones(interval.Quantity(steps), semitones)
}

// Equal compares sounding position; spelling is ignored.
func (p Pitch) Equal(other Pitch) bool {
	return p.Absolute() == other.Absolute()
}

func (p Pitch) Compare(other Pitch) int {
	return p.Absolute() - other.Absolute()
}

func (p Pitch) Less(other Pitch) bool {
	return p.Compare(other) < 0
}

func Min(a, b Pitch) Pitch {
	if b.Absolute() < a.Absolute() {
		return b
	}
	return a
}

func Max(a, b Pitch) Pitch {
	if b.Absolute() > a.Absolute() {
		return b
	}
	return a
}

func (p Pitch) String() string {
	return p.class.String() + strconv.Itoa(p.octave)
}

// ParsePitch reads either a MIDI note number ("60") or a note with its
// octave ("C4", "Eb3", "F##2"). MIDI numbers are spelled favoring sharps.
func ParsePitch(s string) (Pitch, error) {
	return ParsePitchMode(s, FavorSharps)
}

// ParsePitchMode is ParsePitch with MIDI numbers spelled according to mode.
// Written notes keep their own spelling.
func ParsePitchMode(s string, mode AccidentalMode) (Pitch, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return FromMidi(n, mode)
	}
	t, err := splitToken(s)
	if err != nil {
		return Pitch{}, err
	}
	if !t.hasOctave {
		return Pitch{}, errors.Wrapf(ErrFormat, "%q: missing octave", s)
	}
	return fromToken(t)
}

// ParsePitchOrDefault is ParsePitchMode with octave used when s has none.
func ParsePitchOrDefault(s string, octave int, mode AccidentalMode) (Pitch, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return FromMidi(n, mode)
	}
	t, err := splitToken(s)
	if err != nil {
		return Pitch{}, err
	}
	if !t.hasOctave {
		t.octave = octave
	}
	return fromToken(t)
}

func fromToken(t token) (Pitch, error) {
	c, err := NewClass(t.name, t.accidental)
	if err != nil {
		return Pitch{}, err
	}
	return NewPitch(c, t.octave)
}

func TryParsePitch(s string) (Pitch, bool) {
	p, err := ParsePitch(s)
	return p, err == nil
}

func TryParsePitchMode(s string, mode AccidentalMode) (Pitch, bool) {
	p, err := ParsePitchMode(s, mode)
	return p, err == nil
}

// ParsePitches parses a comma separated list. One bad token fails the list.
func ParsePitches(s string) ([]Pitch, error) {
	var res []Pitch
	for _, tok := range strings.Split(s, ",") {
		p, err := ParsePitch(tok)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func TryParsePitches(s string) ([]Pitch, bool) {
	res, err := ParsePitches(s)
	return res, err == nil
}
