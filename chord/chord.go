package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/harmonia/formula"
	"github.com/jsphweid/harmonia/pitch"
)

// Match is a catalog chord that spells a set of notes.
type Match struct {
	Chord *formula.Chord
	Root  pitch.Class
	// index of the bass note among the chord's tones, 0 in root position
	Inversion int
}

func (m Match) Label() string {
	label := m.Chord.Label(m.Root)
	if m.Inversion == 0 {
		return label
	}
	return fmt.Sprintf("%s (inversion %d)", label, m.Inversion)
}

// CreateChordKey renders pitch class indices as a sorted, deduplicated key
// such as "0-4-7".
func CreateChordKey(indices []int) string {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[((i%12)+12)%12] = true
	}
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var res string
	for i, k := range keys {
		res += fmt.Sprintf("%v", k)
		if i < len(keys)-1 {
			res += "-"
		}
	}
	return res
}

func keyOf(classes []pitch.Class) string {
	indices := make([]int, len(classes))
	for i, c := range classes {
		indices[i] = c.Index()
	}
	return CreateChordKey(indices)
}

// Identify names notes with every chord whose tones, built on one of the
// notes, sound exactly the same pitch classes. Results are rank sorted.
func Identify(chords []*formula.Chord, notes []pitch.Pitch) []Match {
	if len(notes) == 0 {
		return nil
	}
	bass := notes[0]
	classes := make([]pitch.Class, 0, len(notes))
	for _, n := range notes {
		bass = pitch.Min(bass, n)
		classes = append(classes, n.Class())
	}
	key := keyOf(classes)

	var res []Match
	seen := make(map[string]bool)
	for _, c := range chords {
		for _, root := range classes {
			tones := c.Classes(root, pitch.FavorSharps)
			if keyOf(tones) != key {
				continue
			}
			id := c.ID() + "@" + fmt.Sprint(root.Index())
			if seen[id] {
				continue
			}
			seen[id] = true
			res = append(res, Match{Chord: c, Root: root, Inversion: inversionOf(tones, bass.Class())})
		}
	}
	RankSortChords(res)
	return res
}

func inversionOf(tones []pitch.Class, bass pitch.Class) int {
	for i, t := range tones {
		if t.Equal(bass) {
			return i
		}
	}
	return 0
}

// RankSortChords puts root position first, then chords with fewer tones,
// then catalog id order.
func RankSortChords(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if (a.Inversion == 0) != (b.Inversion == 0) {
			return a.Inversion == 0
		}
		if a.Chord.Len() != b.Chord.Len() {
			return a.Chord.Len() < b.Chord.Len()
		}
		return a.Chord.ID() < b.Chord.ID()
	})
}
