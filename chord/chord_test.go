package chord

import (
	"testing"

	"github.com/jsphweid/harmonia/formula"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chords(t *testing.T) []*formula.Chord {
	defs := []struct{ id, symbol, list string }{
		{"major", "", "1,3,5"},
		{"minor", "m", "1,m3,5"},
		{"major-sixth", "6", "1,3,5,6"},
		{"minor-seventh", "m7", "1,m3,5,m7"},
		{"augmented", "aug", "1,3,A5"},
	}
	var res []*formula.Chord
	for _, d := range defs {
		c, err := formula.ParseChord(d.id, d.id, d.symbol, d.list)
		require.NoError(t, err)
		res = append(res, c)
	}
	return res
}

func notes(t *testing.T, list string) []pitch.Pitch {
	res, err := pitch.ParsePitches(list)
	require.NoError(t, err)
	return res
}

func labels(matches []Match) []string {
	res := make([]string, len(matches))
	for i, m := range matches {
		res[i] = m.Label()
	}
	return res
}

func TestCreateChordKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0-4-7", CreateChordKey([]int{7, 0, 4}))
	assert.Equal("0-4-7", CreateChordKey([]int{12, 16, 19, 4}))
	assert.Equal("", CreateChordKey(nil))
}

func TestIdentifyTriads(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C"}, labels(Identify(chords(t), notes(t, "C4,E4,G4"))))
	assert.Equal([]string{"C (inversion 1)"}, labels(Identify(chords(t), notes(t, "E3,G3,C4"))))
	assert.Equal([]string{"Dm"}, labels(Identify(chords(t), notes(t, "D4,F4,A4,D5"))))
	assert.Empty(Identify(chords(t), notes(t, "C4,D4,E4")))
	assert.Empty(Identify(chords(t), nil))
}

func TestIdentifyRanksRootPositionFirst(t *testing.T) {
	// the same four classes are C6 and Am7
	got := labels(Identify(chords(t), notes(t, "A3,C4,E4,G4")))
	assert.Equal(t, []string{"Am7", "C6 (inversion 3)"}, got)

	got = labels(Identify(chords(t), notes(t, "C3,E3,G3,A3")))
	assert.Equal(t, []string{"C6", "Am7 (inversion 1)"}, got)
}

func TestIdentifySymmetricChord(t *testing.T) {
	got := labels(Identify(chords(t), notes(t, "C4,E4,G#4")))
	assert.Equal(t, []string{"Caug", "Eaug (inversion 2)", "G#aug (inversion 1)"}, got)
}
