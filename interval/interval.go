package interval

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrFormat is returned by the parsers for malformed notation.
	ErrFormat = errors.New("invalid interval format")
	// ErrInvalid is returned for (quantity, quality) pairs missing from the
	// semitone table, and for semitone counts no quality can produce.
	ErrInvalid = errors.New("invalid interval")
)

func errorInvalid(q Quantity, ql Quality) error {
	return errors.Wrapf(ErrInvalid, "%v %v", ql, q)
}

// Interval is a validated quantity and quality. The semitone count is derived
// from the table at construction and can't be set independently.
type Interval struct {
	quantity  Quantity
	quality   Quality
	semitones int
}

var (
	PerfectUnison     = Must(Unison, Perfect)
	AugmentedUnison   = Must(Unison, Augmented)
	MinorSecond       = Must(Second, Minor)
	MajorSecond       = Must(Second, Major)
	AugmentedSecond   = Must(Second, Augmented)
	MinorThird        = Must(Third, Minor)
	MajorThird        = Must(Third, Major)
	PerfectFourth     = Must(Fourth, Perfect)
	AugmentedFourth   = Must(Fourth, Augmented)
	DiminishedFifth   = Must(Fifth, Diminished)
	PerfectFifth      = Must(Fifth, Perfect)
	AugmentedFifth    = Must(Fifth, Augmented)
	MinorSixth        = Must(Sixth, Minor)
	MajorSixth        = Must(Sixth, Major)
	DiminishedSeventh = Must(Seventh, Diminished)
	MinorSeventh      = Must(Seventh, Minor)
	MajorSeventh      = Must(Seventh, Major)
	PerfectOctave     = Must(Octave, Perfect)
	MinorNinth        = Must(Ninth, Minor)
	MajorNinth        = Must(Ninth, Major)
	AugmentedNinth    = Must(Ninth, Augmented)
	PerfectEleventh   = Must(Eleventh, Perfect)
	AugmentedEleventh = Must(Eleventh, Augmented)
	MinorThirteenth   = Must(Thirteenth, Minor)
	MajorThirteenth   = Must(Thirteenth, Major)
)

// New builds the interval for q and ql, failing with ErrInvalid when the
// pair is not in the table.
func New(q Quantity, ql Quality) (Interval, error) {
	semitones, err := SemitoneCount(q, ql)
	if err != nil {
		return Interval{}, err
	}
	return Interval{quantity: q, quality: ql, semitones: semitones}, nil
}

// Must is New for values known to be valid; it panics otherwise.
func Must(q Quantity, ql Quality) Interval {
	iv, err := New(q, ql)
	if err != nil {
		panic(err)
	}
	return iv
}

// FromSemitones resolves the quality of q that spans semitones. The search
// runs from Diminished to Augmented and takes the first match.
func FromSemitones(q Quantity, semitones int) (Interval, error) {
	ql, ok := qualityFor(q, semitones)
	if !ok {
		return Interval{}, errors.Wrapf(ErrInvalid, "no %v spans %d semitones", q, semitones)
	}
	return Interval{quantity: q, quality: ql, semitones: semitones}, nil
}

func (iv Interval) Quantity() Quantity { return iv.quantity }
func (iv Interval) Quality() Quality   { return iv.quality }
func (iv Interval) Semitones() int     { return iv.semitones }

// IsCompound reports whether the interval spans more than an octave.
func (iv Interval) IsCompound() bool {
	return iv.quantity > Octave
}

// Simple reduces a compound interval into its single octave equivalent. The
// octave itself is kept.
func (iv Interval) Simple() Interval {
	if !iv.IsCompound() {
		return iv
	}
	return Must(iv.quantity-7, iv.quality)
}

// Inversion mirrors the interval inside the octave: the quantity becomes its
// complement to an octave and the quality flips around Perfect. Compound
// intervals are reduced first. An augmented octave has no inversion since a
// diminished unison doesn't exist.
func (iv Interval) Inversion() (Interval, error) {
	s := iv.Simple()
	return New(Octave-s.quantity, Augmented-s.quality)
}

// Compare orders by quantity, then quality.
func (iv Interval) Compare(other Interval) int {
	switch {
	case iv.quantity < other.quantity:
		return -1
	case iv.quantity > other.quantity:
		return 1
	case iv.quality < other.quality:
		return -1
	case iv.quality > other.quality:
		return 1
	}
	return 0
}

func (iv Interval) Less(other Interval) bool {
	return iv.Compare(other) < 0
}

// Name spells the interval out, e.g. "Major Third".
func (iv Interval) Name() string {
	return iv.quality.String() + " " + iv.quantity.String()
}

// Text renders the interval through layout, one code per character:
//
//	s  quality symbol, omitted when it's the default (Perfect or Major)
//	S  quality symbol, always
//	q  1-based quantity number
//	Q  quantity name
//
// Anything else is copied through.
func (iv Interval) Text(layout string) string {
	var b strings.Builder
	for _, r := range layout {
		switch r {
		case 's':
			if iv.quality != iv.quantity.DefaultQuality() {
				b.WriteString(iv.quality.Symbol())
			}
		case 'S':
			b.WriteString(iv.quality.Symbol())
		case 'q':
			b.WriteString(strconv.Itoa(iv.quantity.Number()))
		case 'Q':
			b.WriteString(iv.quantity.String())
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (iv Interval) String() string {
	return iv.Text("sq")
}

// Parse reads an optional quality symbol (d, m, P, M, A, or R for unison)
// followed by a 1-based number: "M3", "P5", "7". When the quality is left out
// unisons, fourths, fifths and their compounds are Perfect and the rest Major.
func Parse(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Interval{}, errors.Wrap(ErrFormat, "empty interval")
	}

	if s[0] == 'R' {
		if rest := s[1:]; rest != "" && rest != "1" {
			return Interval{}, errors.Wrapf(ErrFormat, "%q: root takes no number but 1", s)
		}
		return PerfectUnison, nil
	}

	quality, explicit := qualityFromSymbol(s[0])
	digits := s
	if explicit {
		digits = s[1:]
	}
	n, err := parseOrdinal(digits)
	if err != nil {
		return Interval{}, errors.Wrapf(ErrFormat, "%q: %v", s, err)
	}

	q := Quantity(n - 1)
	if !explicit {
		quality = q.DefaultQuality()
	}
	iv, err := New(q, quality)
	if err != nil {
		return Interval{}, errors.Wrapf(ErrFormat, "%q: %v", s, err)
	}
	return iv, nil
}

func parseOrdinal(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("missing number")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("unexpected %q", r)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > quantityCount {
		return 0, fmt.Errorf("number %d outside 1..%d", n, quantityCount)
	}
	return n, nil
}

func TryParse(s string) (Interval, bool) {
	iv, err := Parse(s)
	return iv, err == nil
}

// ParseList parses a comma separated list. One bad token fails the list.
func ParseList(s string) ([]Interval, error) {
	var res []Interval
	for _, token := range strings.Split(s, ",") {
		iv, err := Parse(token)
		if err != nil {
			return nil, err
		}
		res = append(res, iv)
	}
	return res, nil
}

func TryParseList(s string) ([]Interval, bool) {
	res, err := ParseList(s)
	return res, err == nil
}

// Sort orders intervals in place by Compare.
func Sort(intervals []Interval) {
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Less(intervals[j])
	})
}

// Join renders intervals in default notation separated by commas.
func Join(intervals []Interval) string {
	parts := make([]string, len(intervals))
	for i, iv := range intervals {
		parts[i] = iv.String()
	}
	return strings.Join(parts, ",")
}
