package formula

import (
	"testing"

	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, list string) *Formula {
	f, err := Parse("test", "Test", list)
	require.NoError(t, err)
	return f
}

func names[T interface{ String() string }](values []T) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = v.String()
	}
	return res
}

func TestNewSortsAndDeduplicates(t *testing.T) {
	f, err := New("triad", "Triad",
		interval.PerfectFifth, interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]interval.Interval{interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth}, f.Intervals())
	assert.Equal(3, f.Len())
	assert.Equal("1,3,5", f.String())
	assert.True(f.Contains(interval.MajorThird))
	assert.False(f.Contains(interval.MinorThird))
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New("empty", "Empty")
	assert.True(t, errors.Is(err, ErrEmpty))

	_, err = Parse("bad", "Bad", "1,3,Z")
	assert.True(t, errors.Is(err, interval.ErrFormat))
}

func TestIntervalsIsACopy(t *testing.T) {
	f := mustParse(t, "1,3,5")
	ivs := f.Intervals()
	ivs[0] = interval.MajorSeventh
	assert.Equal(t, interval.PerfectUnison, f.Intervals()[0])
}

func TestMajorScaleFromC(t *testing.T) {
	f := mustParse(t, "1,2,3,4,5,6,7")
	got := f.Pitches(pitch.MiddleC, 8, pitch.FavorSharps)
	assert.Equal(t, []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5"}, names(got))
}

func TestScaleSpellingFollowsLetters(t *testing.T) {
	f := mustParse(t, "1,2,3,4,5,6,7")
	root := pitch.MustPitch(pitch.FSharp, 3)
	got := f.Pitches(root, 8, pitch.FavorFlats)
	assert.Equal(t, []string{"F#3", "G#3", "A#3", "B3", "C#4", "D#4", "E#4", "F#4"}, names(got))

	root = pitch.MustPitch(pitch.EFlat, 3)
	got = f.Pitches(root, 7, pitch.FavorSharps)
	assert.Equal(t, []string{"Eb3", "F3", "G3", "Ab3", "Bb3", "C4", "D4"}, names(got))
}

func TestGenerateCycleBoundary(t *testing.T) {
	f := mustParse(t, "1,3,5")
	root := pitch.MiddleC

	// the last step of a pass stays in the root octave, the next one moves up
	p, ok := f.step(root, 2, pitch.FavorSharps)
	require.True(t, ok)
	assert.Equal(t, "G4", p.String())

	p, ok = f.step(root, 3, pitch.FavorSharps)
	require.True(t, ok)
	assert.Equal(t, "C5", p.String())

	p, ok = f.step(root, 6, pitch.FavorSharps)
	require.True(t, ok)
	assert.Equal(t, "C6", p.String())

	got := f.Pitches(root, 7, pitch.FavorSharps)
	assert.Equal(t, []string{"C4", "E4", "G4", "C5", "E5", "G5", "C6"}, names(got))
}

func TestGenerateFromMidCycle(t *testing.T) {
	f := mustParse(t, "1,3,5")

	var got []pitch.Pitch
	for p := range f.GenerateFrom(pitch.MiddleC, 2, pitch.FavorSharps) {
		got = append(got, p)
		if len(got) == 4 {
			break
		}
	}
	assert.Equal(t, []string{"G4", "C5", "E5", "G5"}, names(got))

	got = got[:0]
	for p := range f.GenerateFrom(pitch.MiddleC, 3, pitch.FavorSharps) {
		got = append(got, p)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"C5", "E5"}, names(got))
}

func TestGenerateStopsAtMaxPitch(t *testing.T) {
	f := mustParse(t, "1,2,3,4,5,6,7")
	var got []pitch.Pitch
	for p := range f.Generate(pitch.MustPitch(pitch.C, 9), pitch.FavorSharps) {
		got = append(got, p)
	}
	assert.Equal(t, []string{"C9", "D9", "E9", "F9", "G9"}, names(got))

	got = got[:0]
	for p := range f.Generate(pitch.MustPitch(pitch.C, 8), pitch.FavorSharps) {
		got = append(got, p)
	}
	assert.Len(t, got, 12)
	assert.Equal(t, pitch.MaxPitch, got[len(got)-1])
}

func TestGenerateIsRestartable(t *testing.T) {
	f := mustParse(t, "1,m3,5")
	seq := f.Generate(pitch.A4, pitch.FavorSharps)

	var first, second []string
	for p := range seq {
		first = append(first, p.String())
		if len(first) == 4 {
			break
		}
	}
	for p := range seq {
		second = append(second, p.String())
		if len(second) == 4 {
			break
		}
	}
	assert.Equal(t, []string{"A4", "C5", "E5", "A5"}, first)
	assert.Equal(t, first, second)
}

func TestGenerateClassesIsUnbounded(t *testing.T) {
	f := mustParse(t, "1,3,5")
	var got []pitch.Class
	for c := range f.GenerateClasses(pitch.EFlat, pitch.FavorSharps) {
		got = append(got, c)
		if len(got) == 100 {
			break
		}
	}
	assert.Len(t, got, 100)
	assert.Equal(t, []string{"Eb", "G", "Bb", "Eb"}, names(got[:4]))
	assert.Equal(t, []string{"Eb", "G", "Bb"}, names(f.Classes(pitch.EFlat, pitch.FavorSharps)))
}

func TestPitchesWithNonPositiveCount(t *testing.T) {
	f := mustParse(t, "1,3,5")
	assert.Empty(t, f.Pitches(pitch.MiddleC, 0, pitch.FavorSharps))
	assert.Empty(t, f.Pitches(pitch.MiddleC, -3, pitch.FavorSharps))
}

func TestPitchesStopsAtTopOfRange(t *testing.T) {
	f := mustParse(t, "1,3,5")
	got := f.Pitches(pitch.MustPitch(pitch.C, 9), 100, pitch.FavorSharps)
	assert.Equal(t, []string{"C9", "E9", "G9"}, names(got))
}
