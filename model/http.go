package model

type PitchResult struct {
	Name      string  `json:"name"`
	Octave    int     `json:"octave"`
	Midi      int     `json:"midi"`
	Frequency float64 `json:"frequency"`
}

type ScaleResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Root      string        `json:"root"`
	Mode      int           `json:"mode,omitempty"`
	Intervals []string      `json:"intervals"`
	Classes   []string      `json:"classes"`
	Pitches   []PitchResult `json:"pitches"`
}

type ChordResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Label     string        `json:"label"`
	Inversion int           `json:"inversion"`
	Intervals []string      `json:"intervals"`
	Pitches   []PitchResult `json:"pitches"`
}

type IntervalResponse struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Interval  string `json:"interval"`
	Name      string `json:"name"`
	Quality   string `json:"quality"`
	Semitones int    `json:"semitones"`
}

type CatalogResponse struct {
	Scales  []string `json:"scales"`
	Chords  []string `json:"chords"`
	Tunings []string `json:"tunings"`
}

type FretboardResponse struct {
	Tuning  string   `json:"tuning"`
	Chord   string   `json:"chord"`
	Strings []string `json:"strings"`
	// one entry per string, -1 when muted
	Frets []int    `json:"frets"`
	Notes []string `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

type ChordMatch struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Root      string `json:"root"`
	Inversion int    `json:"inversion"`
}

type IdentifyResponse struct {
	Notes   []string     `json:"notes"`
	Matches []ChordMatch `json:"matches"`
}
