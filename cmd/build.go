package cmd

import (
	"github.com/jsphweid/harmonia/instrument"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/util"
	"github.com/pkg/errors"
)

const (
	defaultOctave  = 4
	defaultSpan    = 4
	defaultMaxFret = 12
)

func parseRoot(s string) (pitch.Pitch, error) {
	if s == "" {
		return pitch.MiddleC, nil
	}
	return pitch.ParsePitchOrDefault(s, defaultOctave, mode)
}

func pitchResults(pitches []pitch.Pitch) []model.PitchResult {
	res := make([]model.PitchResult, len(pitches))
	for i, p := range pitches {
		res[i] = model.PitchResult{
			Name:      p.String(),
			Octave:    p.Octave(),
			Midi:      p.Midi(),
			Frequency: p.Frequency(),
		}
	}
	return res
}

func intervalNames(intervals []interval.Interval) []string {
	res := make([]string, len(intervals))
	for i, iv := range intervals {
		res[i] = iv.String()
	}
	return res
}

func classNames(classes []pitch.Class) []string {
	res := make([]string, len(classes))
	for i, c := range classes {
		res[i] = c.String()
	}
	return res
}

// buildScale spells octaves passes of the scale, plus the closing tonic, from
// root. degree > 1 selects a mode of the scale.
func buildScale(key, rootArg string, octaves, degree int) (model.ScaleResponse, error) {
	s, err := cat.Scale(key)
	if err != nil {
		return model.ScaleResponse{}, err
	}
	if degree > 1 {
		if s, err = s.Mode(degree); err != nil {
			return model.ScaleResponse{}, err
		}
	}
	root, err := parseRoot(rootArg)
	if err != nil {
		return model.ScaleResponse{}, err
	}
	octaves = util.Clamp(octaves, 1, pitch.MaxOctave+1)
	pitches := s.Pitches(root, s.Len()*octaves+1, mode)
	return model.ScaleResponse{
		ID:        s.ID(),
		Name:      s.Name(),
		Root:      root.String(),
		Mode:      degree,
		Intervals: intervalNames(s.Intervals()),
		Classes:   classNames(s.Classes(root.Class(), mode)),
		Pitches:   pitchResults(pitches),
	}, nil
}

func buildChord(key, rootArg string, inversion int) (model.ChordResponse, error) {
	c, err := cat.Chord(key)
	if err != nil {
		return model.ChordResponse{}, err
	}
	root, err := parseRoot(rootArg)
	if err != nil {
		return model.ChordResponse{}, err
	}
	pitches, err := c.Voicing(root, inversion, mode)
	if err != nil {
		return model.ChordResponse{}, err
	}
	return model.ChordResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Label:     c.Label(root.Class()),
		Inversion: inversion,
		Intervals: intervalNames(c.Intervals()),
		Pitches:   pitchResults(pitches),
	}, nil
}

func buildFingering(tuningKey, chordKey, rootArg string, span, maxFret int) (model.FretboardResponse, error) {
	t, err := cat.Tuning(tuningKey)
	if err != nil {
		return model.FretboardResponse{}, err
	}
	c, err := cat.Chord(chordKey)
	if err != nil {
		return model.FretboardResponse{}, err
	}
	root, err := pitch.ParseClass(rootArg)
	if err != nil {
		if p, ok := pitch.TryParsePitchMode(rootArg, mode); ok {
			root, err = p.Class(), nil
		}
	}
	if err != nil {
		return model.FretboardResponse{}, errors.Wrap(err, "root")
	}

	classes := c.Classes(root, mode)
	frets, err := instrument.Fingering(t, classes, span, maxFret)
	if err != nil {
		return model.FretboardResponse{}, errors.Wrapf(err, "%s on %s", c.Label(root), t.ID)
	}
	res := model.FretboardResponse{
		Tuning:  t.ID,
		Chord:   c.Label(root),
		Strings: make([]string, len(t.Strings)),
		Frets:   frets,
		Notes:   make([]string, len(t.Strings)),
	}
	for s, open := range t.Strings {
		res.Strings[s] = open.String()
		if frets[s] == instrument.Muted {
			res.Notes[s] = "x"
			continue
		}
		p, err := t.At(s, frets[s], mode)
		if err != nil {
			return model.FretboardResponse{}, err
		}
		res.Notes[s] = spellAs(p.Class(), classes).String()
	}
	return res, nil
}

// spellAs returns the member of classes enharmonic to c, or c.
func spellAs(c pitch.Class, classes []pitch.Class) pitch.Class {
	for _, v := range classes {
		if v.Equal(c) {
			return v
		}
	}
	return c
}
