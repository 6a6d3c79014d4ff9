package formula

import (
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
)

// Scale is a formula with the catalog metadata that travels with scales.
type Scale struct {
	*Formula
	categories []string
	aliases    []string
}

func (s *Scale) Categories() []string {
	return append([]string(nil), s.categories...)
}

func (s *Scale) Aliases() []string {
	return append([]string(nil), s.aliases...)
}

func (s *Scale) HasCategory(category string) bool {
	for _, c := range s.categories {
		if c == category {
			return true
		}
	}
	return false
}

// Mode rotates the scale to start on its degree-th note (1 is the scale
// itself) and re-measures every interval from the new tonic. The major
// scale's second mode is dorian.
func (s *Scale) Mode(degree int) (*Scale, error) {
	n := s.Len()
	if degree < 1 || degree > n {
		return nil, errors.Wrapf(pitch.ErrRange, "scale %q has no degree %d", s.id, degree)
	}
	if degree == 1 {
		return s, nil
	}

	classes := s.Classes(pitch.C, pitch.FavorSharps)
	tonic := classes[degree-1]
	intervals := make([]interval.Interval, n)
	for k := range classes {
		iv, err := tonic.IntervalTo(classes[(degree-1+k)%n])
		if err != nil {
			return nil, errors.Wrapf(err, "mode %d of %q", degree, s.id)
		}
		intervals[k] = iv
	}
	return NewScaleBuilder(s.id).
		Name(s.name).
		Intervals(intervals...).
		Categories(s.categories...).
		Build()
}

// ScaleBuilder collects a scale definition and validates it in Build.
type ScaleBuilder struct {
	id         string
	name       string
	intervals  []interval.Interval
	categories []string
	aliases    []string
	err        error
}

func NewScaleBuilder(id string) *ScaleBuilder {
	return &ScaleBuilder{id: id, name: id}
}

func (b *ScaleBuilder) Name(name string) *ScaleBuilder {
	b.name = name
	return b
}

func (b *ScaleBuilder) Intervals(intervals ...interval.Interval) *ScaleBuilder {
	b.intervals = append(b.intervals, intervals...)
	return b
}

// ParseIntervals adds a comma separated list. A parse error is kept and
// returned by Build.
func (b *ScaleBuilder) ParseIntervals(list string) *ScaleBuilder {
	intervals, err := interval.ParseList(list)
	if err != nil {
		if b.err == nil {
			b.err = errors.Wrapf(err, "scale %q", b.id)
		}
		return b
	}
	return b.Intervals(intervals...)
}

func (b *ScaleBuilder) Categories(categories ...string) *ScaleBuilder {
	b.categories = append(b.categories, categories...)
	return b
}

func (b *ScaleBuilder) Aliases(aliases ...string) *ScaleBuilder {
	b.aliases = append(b.aliases, aliases...)
	return b
}

func (b *ScaleBuilder) Build() (*Scale, error) {
	if b.err != nil {
		return nil, b.err
	}
	f, err := New(b.id, b.name, b.intervals...)
	if err != nil {
		return nil, err
	}
	return &Scale{
		Formula:    f,
		categories: append([]string(nil), b.categories...),
		aliases:    append([]string(nil), b.aliases...),
	}, nil
}
