package formula

import (
	"iter"

	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/util"
	"github.com/pkg/errors"
)

var ErrEmpty = errors.New("formula has no intervals")

// Formula is a named set of intervals above a root, kept sorted and free of
// duplicates. Scales and chords are both built on it.
type Formula struct {
	id        string
	name      string
	intervals []interval.Interval
}

// New sorts and deduplicates intervals. At least one is required.
func New(id, name string, intervals ...interval.Interval) (*Formula, error) {
	set := normalize(intervals)
	if len(set) == 0 {
		return nil, errors.Wrapf(ErrEmpty, "formula %q", id)
	}
	return &Formula{id: id, name: name, intervals: set}, nil
}

// Parse builds a formula from a comma separated interval list like "1,3,5".
func Parse(id, name, list string) (*Formula, error) {
	intervals, err := interval.ParseList(list)
	if err != nil {
		return nil, errors.Wrapf(err, "formula %q", id)
	}
	return New(id, name, intervals...)
}

func normalize(intervals []interval.Interval) []interval.Interval {
	set := make([]interval.Interval, len(intervals))
	copy(set, intervals)
	interval.Sort(set)

	res := set[:0]
	for i, iv := range set {
		if i > 0 && iv == set[i-1] {
			continue
		}
		res = append(res, iv)
	}
	return res
}

func (f *Formula) ID() string   { return f.id }
func (f *Formula) Name() string { return f.name }
func (f *Formula) Len() int     { return len(f.intervals) }

// Intervals returns a copy of the sorted set.
func (f *Formula) Intervals() []interval.Interval {
	res := make([]interval.Interval, len(f.intervals))
	copy(res, f.intervals)
	return res
}

func (f *Formula) Contains(iv interval.Interval) bool {
	for _, v := range f.intervals {
		if v == iv {
			return true
		}
	}
	return false
}

func (f *Formula) String() string {
	return interval.Join(f.intervals)
}

// Generate yields the formula's pitches above root, cycling through the
// intervals and moving up an octave after each pass. It stops once a pitch
// would pass pitch.MaxPitch; stop pulling to end it sooner.
func (f *Formula) Generate(root pitch.Pitch, mode pitch.AccidentalMode) iter.Seq[pitch.Pitch] {
	return f.GenerateFrom(root, 0, mode)
}

// GenerateFrom is Generate starting at the start-th step of the cycle, e.g.
// 1 for the first inversion of a triad. Step i uses interval i%Len raised by
// i/Len octaves.
func (f *Formula) GenerateFrom(root pitch.Pitch, start int, mode pitch.AccidentalMode) iter.Seq[pitch.Pitch] {
	if start < 0 {
		start = 0
	}
	return func(yield func(pitch.Pitch) bool) {
		for i := start; ; i++ {
			p, ok := f.step(root, i, mode)
			if !ok || !yield(p) {
				return
			}
		}
	}
}

func (f *Formula) step(root pitch.Pitch, i int, mode pitch.AccidentalMode) (pitch.Pitch, bool) {
	n := len(f.intervals)
	p, err := root.Add(f.intervals[i%n], mode)
	if err != nil {
		return pitch.Pitch{}, false
	}
	p, err = p.AddOctaves(i / n)
	if err != nil {
		return pitch.Pitch{}, false
	}
	return p, true
}

// GenerateClasses cycles the formula's pitch classes above root forever.
// Callers must bound how much they pull.
func (f *Formula) GenerateClasses(root pitch.Class, mode pitch.AccidentalMode) iter.Seq[pitch.Class] {
	return func(yield func(pitch.Class) bool) {
		for i := 0; ; i = (i + 1) % len(f.intervals) {
			if !yield(root.Add(f.intervals[i], mode)) {
				return
			}
		}
	}
}

// Classes returns one pass of the formula's pitch classes above root.
func (f *Formula) Classes(root pitch.Class, mode pitch.AccidentalMode) []pitch.Class {
	res := make([]pitch.Class, len(f.intervals))
	for i, iv := range f.intervals {
		res[i] = root.Add(iv, mode)
	}
	return res
}

// Pitches collects up to count generated pitches.
func (f *Formula) Pitches(root pitch.Pitch, count int, mode pitch.AccidentalMode) []pitch.Pitch {
	return util.Take(f.Generate(root, mode), count)
}
