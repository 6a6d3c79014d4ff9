package pitch

import (
	"testing"

	"github.com/jsphweid/harmonia/interval"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesAgree(t *testing.T) {
	assert := assert.New(t)
	assert.Len(spellings, 35)

	seen := make(map[spelling]bool)
	for row, s := range spellings {
		assert.False(seen[s], "duplicate spelling %v", s)
		seen[s] = true
		assert.Equal(int(s.index), mod(s.name.offset()+s.accidental.Semitones(), 12))
		assert.Equal(int8(row), enharmonics[s.index][s.accidental.column()])
	}

	filled := 0
	for index, row := range enharmonics {
		for col, r := range row {
			if r == noSpelling {
				continue
			}
			filled++
			assert.Equal(int8(index), spellings[r].index)
			assert.Equal(col, spellings[r].accidental.column())
		}
	}
	assert.Equal(35, filled)
}

func TestEveryIndexHasSharpAndFlatSpellings(t *testing.T) {
	for i := 0; i < 12; i++ {
		assert.Equal(t, i, ClassFromIndex(i, FavorSharps).Index())
		assert.Equal(t, i, ClassFromIndex(i, FavorFlats).Index())
	}
}

func TestClassRoundTrip(t *testing.T) {
	for _, c := range AllClasses() {
		t.Run(c.String(), func(t *testing.T) {
			built, err := NewClass(c.Name(), c.Accidental())
			require.NoError(t, err)
			assert.True(t, built.SameSpelling(c))

			parsed, err := ParseClass(c.String())
			require.NoError(t, err)
			assert.True(t, parsed.Equal(c))
			assert.True(t, parsed.SameSpelling(c))

			glyph, err := ParseClass(c.Glyph())
			if c.Accidental() == DoubleFlat || c.Accidental() == DoubleSharp {
				// 𝄫 and 𝄪 are output only
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, glyph.SameSpelling(c))
		})
	}
}

func TestEnharmonicEquivalence(t *testing.T) {
	assert := assert.New(t)
	assert.True(CSharp.Equal(DFlat))
	assert.Equal(0, CSharp.Compare(DFlat))
	assert.NotEqual(CSharp.String(), DFlat.String())
	assert.False(CSharp.SameSpelling(DFlat))
	assert.True(BSharp.Equal(C))
	assert.True(CFlat.Equal(B))
	assert.Equal(11, CFlat.Index())
	assert.Less(C.Compare(D), 0)
}

func TestEnharmonic(t *testing.T) {
	assert := assert.New(t)

	got, ok := FSharp.Enharmonic(NoteG)
	assert.True(ok)
	assert.Equal(GFlat, got)

	got, ok = C.Enharmonic(NoteB)
	assert.True(ok)
	assert.Equal(BSharp, got)

	_, ok = GSharp.Enharmonic(NoteF)
	assert.False(ok)

	assert.Equal([]Class{MustClass(NoteA, DoubleFlat), G, MustClass(NoteF, DoubleSharp)}, G.Enharmonics())
	assert.Equal([]Class{AFlat, GSharp}, AFlat.Enharmonics())
}

func TestTransposeFollowsMode(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FSharp, C.Transpose(6, FavorSharps))
	assert.Equal(GFlat, C.Transpose(6, FavorFlats))
	assert.Equal(B, C.Transpose(-1, FavorSharps))
	assert.Equal(E, C.Transpose(16, FavorFlats))
	assert.Equal(DFlat, CSharp.Respell(FavorFlats))
}

func TestAddIsLetterSteered(t *testing.T) {
	cases := []struct {
		root Class
		iv   interval.Interval
		want Class
	}{
		{EFlat, interval.MajorThird, G},
		{C, interval.AugmentedFourth, FSharp},
		{C, interval.DiminishedFifth, GFlat},
		{GSharp, interval.MajorThird, BSharp},
		{BFlat, interval.PerfectFourth, EFlat},
		{F, interval.MinorSeventh, EFlat},
		{DFlat, interval.MinorThird, MustClass(NoteF, Flat)},
		{C, interval.MajorNinth, D},
		{E, interval.MinorSecond, F},
		{B, interval.AugmentedUnison, BSharp},
	}
	for _, c := range cases {
		name := c.root.String() + "+" + c.iv.String()
		t.Run(name, func(t *testing.T) {
			for _, mode := range []AccidentalMode{FavorSharps, FavorFlats} {
				got := c.root.Add(c.iv, mode)
				assert.True(t, got.SameSpelling(c.want), "%v got %v want %v", mode, got, c.want)
			}
		})
	}
}

func TestAddFallsBackWhenLetterIsOutOfReach(t *testing.T) {
	// B## + M3 would need D###
	bxx := MustClass(NoteB, DoubleSharp)
	assert.Equal(t, F, bxx.Add(interval.MajorThird, FavorSharps))
}

func TestSubtract(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(EFlat, G.Subtract(interval.MajorThird, FavorSharps))
	assert.Equal(GSharp, C.Subtract(interval.Must(interval.Fourth, interval.Diminished), FavorSharps))
	assert.Equal(BFlat, C.Subtract(interval.MajorSecond, FavorSharps))
}

func TestIntervalTo(t *testing.T) {
	cases := []struct {
		from, to Class
		want     interval.Interval
	}{
		{C, E, interval.MajorThird},
		{E, C, interval.MinorSixth},
		{C, EFlat, interval.MinorThird},
		{C, DSharp, interval.AugmentedSecond},
		{C, C, interval.PerfectUnison},
		{C, CSharp, interval.AugmentedUnison},
		{B, CFlat, interval.Must(interval.Second, interval.Diminished)},
		{CFlat, B, interval.Must(interval.Seventh, interval.Augmented)},
		{FSharp, C, interval.DiminishedFifth},
		{G, GFlat, interval.Must(interval.Octave, interval.Diminished)},
		{C, CFlat, interval.Must(interval.Octave, interval.Diminished)},
	}
	for _, c := range cases {
		t.Run(c.from.String()+"-"+c.to.String(), func(t *testing.T) {
			got, err := c.from.IntervalTo(c.to)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	_, err := ESharp.IntervalTo(FFlat)
	assert.True(t, errors.Is(err, interval.ErrInvalid))
}

func TestAddThenIntervalToAgree(t *testing.T) {
	for _, root := range []Class{C, D, EFlat, FSharp, AFlat, B} {
		for _, iv := range []interval.Interval{
			interval.MinorSecond, interval.MajorThird, interval.PerfectFourth,
			interval.AugmentedFourth, interval.PerfectFifth, interval.MinorSeventh,
		} {
			got, err := root.IntervalTo(root.Add(iv, FavorSharps))
			require.NoError(t, err)
			assert.Equal(t, iv, got, "%v + %v", root, iv)
		}
	}
}

func TestParseClass(t *testing.T) {
	cases := []struct {
		in   string
		want Class
	}{
		{"C", C},
		{"c", C},
		{"eb", EFlat},
		{"EB", EFlat},
		{"Bb", BFlat},
		{"bb", BFlat},
		{"F#", FSharp},
		{"F##", MustClass(NoteF, DoubleSharp)},
		{"Abb", MustClass(NoteA, DoubleFlat)},
		{"E♭", EFlat},
		{"F♯", FSharp},
		{"G♮", G},
		{" D ", D},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseClass(c.in)
			require.NoError(t, err)
			assert.True(t, got.SameSpelling(c.want), "got %v", got)
		})
	}

	for _, in := range []string{"", "H", "C4", "Cb#", "C###", "Cx", "C♮#", "1"} {
		t.Run("bad "+in, func(t *testing.T) {
			_, ok := TryParseClass(in)
			assert.False(t, ok)
		})
	}
}

func TestParseClasses(t *testing.T) {
	got, err := ParseClasses("C, E,G#")
	require.NoError(t, err)
	assert.Equal(t, []Class{C, E, GSharp}, got)

	_, ok := TryParseClasses("C,Q,E")
	assert.False(t, ok)
}
