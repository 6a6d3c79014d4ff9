package model

// Definitions is the serialized form of the catalog, as embedded, read from a
// CATALOG_PATH file or scanned from DynamoDB.
type Definitions struct {
	Scales  []ScaleDefinition  `json:"scales"`
	Chords  []ChordDefinition  `json:"chords"`
	Tunings []TuningDefinition `json:"tunings"`
}

type ScaleDefinition struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Intervals  string   `json:"intervals"`
	Categories []string `json:"categories,omitempty"`
	Aliases    []string `json:"aliases,omitempty"`
}

type ChordDefinition struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Symbol    string   `json:"symbol,omitempty"`
	Intervals string   `json:"intervals"`
	Aliases   []string `json:"aliases,omitempty"`
}

type TuningDefinition struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Instrument string   `json:"instrument"`
	Pitches    string   `json:"pitches"`
	Aliases    []string `json:"aliases,omitempty"`
}

// Merge overlays other onto d. Entries with a known ID replace the existing
// one in place; new IDs are appended.
func (d *Definitions) Merge(other *Definitions) {
	if other == nil {
		return
	}
	d.Scales = mergeByID(d.Scales, other.Scales, func(s ScaleDefinition) string { return s.ID })
	d.Chords = mergeByID(d.Chords, other.Chords, func(c ChordDefinition) string { return c.ID })
	d.Tunings = mergeByID(d.Tunings, other.Tunings, func(t TuningDefinition) string { return t.ID })
}

func mergeByID[A any](base, extra []A, id func(A) string) []A {
	index := make(map[string]int, len(base))
	for i, v := range base {
		index[id(v)] = i
	}
	for _, v := range extra {
		if i, ok := index[id(v)]; ok {
			base[i] = v
			continue
		}
		index[id(v)] = len(base)
		base = append(base, v)
	}
	return base
}

func (d *Definitions) Len() int {
	return len(d.Scales) + len(d.Chords) + len(d.Tunings)
}
