package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/harmonia/catalog"
	"github.com/jsphweid/harmonia/config"
	"github.com/jsphweid/harmonia/instrument"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cfg = config.Load()
	cat = catalog.MustLoadEmbedded()
	mode = pitch.FavorSharps

	os.Exit(m.Run())
}

func names(pitches []model.PitchResult) []string {
	res := make([]string, len(pitches))
	for i, p := range pitches {
		res[i] = p.Name
	}
	return res
}

func TestBuildScale(t *testing.T) {
	res, err := buildScale("dorian", "D3", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"D3", "E3", "F3", "G3", "A3", "B3", "C4", "D4"}, names(res.Pitches))

	res, err = buildScale("ionian", "Eb", 1, 6)
	require.NoError(t, err)
	assert := assert.New(t)
	assert.Equal("major", res.ID)
	assert.Equal(6, res.Mode)
	assert.Equal([]string{"1", "2", "m3", "4", "5", "m6", "m7"}, res.Intervals)
	assert.Equal([]string{"Eb", "F", "Gb", "Ab", "Bb", "Cb", "Db"}, res.Classes)
	assert.Equal("Cb5", res.Pitches[5].Name)
	assert.Equal("Eb5", res.Pitches[7].Name)

	res, err = buildScale("minor-pentatonic", "", 2, 1)
	require.NoError(t, err)
	assert.Len(res.Pitches, 11)
	assert.Equal("C6", res.Pitches[10].Name)

	_, err = buildScale("bebop", "C4", 1, 1)
	assert.True(errors.Is(err, catalog.ErrNotFound))
	_, err = buildScale("major", "C4", 1, 9)
	assert.True(errors.Is(err, pitch.ErrRange))
}

func TestBuildChord(t *testing.T) {
	res, err := buildChord("m7", "D3", 1)
	require.NoError(t, err)
	assert.Equal(t, "Dm7", res.Label)
	assert.Equal(t, []string{"F3", "A3", "C4", "D4"}, names(res.Pitches))

	_, err = buildChord("major", "G9", 0)
	assert.True(t, errors.Is(err, pitch.ErrRange))
}

func TestBuildFingering(t *testing.T) {
	res, err := buildFingering("guitar", "major", "C", 4, 12)
	require.NoError(t, err)
	assert.Equal(t, []int{instrument.Muted, 3, 2, 0, 1, 0}, res.Frets)
	assert.Equal(t, []string{"x", "C", "E", "G", "C", "E"}, res.Notes)
	assert.Equal(t, "C", res.Chord)

	res, err = buildFingering("guitar", "minor", "Eb3", 4, 12)
	require.NoError(t, err)
	assert.Equal(t, "Ebm", res.Chord)
	assert.Contains(t, res.Notes, "Gb")
}

func get(t *testing.T, url string, out any) *http.Response {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	resp := w.Result()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestScaleEndpoint(t *testing.T) {
	var res model.ScaleResponse
	resp := get(t, "/scales/major?root=A3", &res)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get(requestIDHeader))
	assert.Equal([]string{"A", "B", "C#", "D", "E", "F#", "G#"}, res.Classes)
	assert.Equal("A4", res.Pitches[7].Name)
	assert.InDelta(440.0, res.Pitches[7].Frequency, 1e-9)
	assert.Equal(69, res.Pitches[7].Midi)

	var e model.ErrorResponse
	resp = get(t, "/scales/bebop", &e)
	assert.Equal(http.StatusNotFound, resp.StatusCode)
	assert.Contains(e.Error, "bebop")

	resp = get(t, "/scales/major?root=H", &e)
	assert.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestChordEndpoint(t *testing.T) {
	var res model.ChordResponse
	resp := get(t, "/chords/dim7?root=B3", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"B3", "D4", "F4", "Ab4"}, names(res.Pitches))

	resp = get(t, "/chords/minor?inversion=x", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = get(t, "/chords/minor?inversion=3", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIntervalEndpoint(t *testing.T) {
	var res model.IntervalResponse
	resp := get(t, "/interval?from=C&to=Eb", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.IntervalResponse{From: "C", To: "Eb", Interval: "m3", Name: "Minor Third", Quality: "min", Semitones: 3}, res)

	resp = get(t, "/interval?from=B3&to=D5", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "m10", res.Interval)

	resp = get(t, "/interval?from=E%23&to=Fb", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = get(t, "/interval?from=C", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFretboardEndpoint(t *testing.T) {
	var res model.FretboardResponse
	resp := get(t, "/fretboard/uke/major?root=C", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int{0, 0, 0, 3}, res.Frets)

	resp = get(t, "/fretboard/banjo/major", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIdentifyEndpoint(t *testing.T) {
	var res model.IdentifyResponse
	resp := get(t, "/identify?notes=E3,G3,C4", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"E3", "G3", "C4"}, res.Notes)
	require.NotEmpty(t, res.Matches)
	assert.Equal(t, model.ChordMatch{ID: "major", Label: "C (inversion 1)", Root: "C", Inversion: 1}, res.Matches[0])

	resp = get(t, "/identify?notes=C4,D4,Eb4", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, res.Matches)

	resp = get(t, "/identify?notes=C,E", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalogEndpoint(t *testing.T) {
	var res model.CatalogResponse
	resp := get(t, "/catalog", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, res.Scales, "blues")
	assert.Contains(t, res.Chords, "dominant-seventh")
	assert.Contains(t, res.Tunings, "dadgad")
}

func run(t *testing.T, args ...string) string {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		chordInversion = 0
		scaleOctaves, scaleMode = 1, 1
		fretChord = false
		pitchGlyphs, useFlat = false, false
		mode = pitch.FavorSharps
	})
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestCommands(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Dm7: F3 A3 C4 D4\n", run(t, "chord", "m7", "D3", "-i", "1"))
	assert.Equal("C4 Major (1 2 3 4 5 6 7)\nC4 D4 E4 F4 G4 A4 B4 C5\n", run(t, "scale", "major"))
	assert.Equal("Eb4 + Major Third = G4\n", run(t, "interval", "Eb4", "M3"))
	assert.Equal("C -> E: 3 (Major Third, 4 semitones)\n", run(t, "interval", "C", "E"))
	assert.Equal("A4    midi  69    440.00 Hz\n", run(t, "pitch", "A4"))
	assert.Contains(run(t, "pitch", "F#"), "Gb F# E##")
	assert.Equal("C on guitar-standard: x 3 2 0 1 0\nx C E G C E\n", run(t, "fretboard", "guitar", "major", "C", "--chord"))
	assert.Contains(run(t, "list", "tunings"), "  mandolin\n")
	assert.Equal("Am7\nC6 (inversion 3)\n", run(t, "identify", "A3", "C4", "E4", "G4"))
}

func TestFlatsSpellsMidiNumbers(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#4   midi  61    277.18 Hz\n", run(t, "pitch", "61"))
	assert.Equal("Db4   midi  61    277.18 Hz\n", run(t, "--flats", "pitch", "61"))
	assert.Contains(run(t, "--flats", "scale", "major", "61"), "Db4 Eb4 F4 Gb4 Ab4 Bb4 C5 Db5")
}

func TestPitchGlyphs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("E♭4   midi  63    311.13 Hz\n", run(t, "pitch", "--glyphs", "Eb4"))
	assert.Contains(run(t, "pitch", "-g", "F#"), "G♭ F♯ E𝄪")
}

func TestScaleModeOfBlues(t *testing.T) {
	assert.Equal(t, "G4 Blues (1 m3 4 m6 m7 d8)\nG4 Bb4 C5 Eb5 F5 Gb5 G5\n", run(t, "scale", "blues", "G4", "--mode", "5"))
}

func TestScaleWithNothingInRange(t *testing.T) {
	saved := cat
	t.Cleanup(func() { cat = saved })

	var err error
	cat, err = catalog.Build(&model.Definitions{
		Scales: []model.ScaleDefinition{{ID: "upper", Name: "Upper", Intervals: "2,3"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "G9 Upper (2 3)\n\n", run(t, "scale", "upper", "G9"))
}
