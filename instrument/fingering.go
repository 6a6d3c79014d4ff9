package instrument

import (
	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
)

// Muted marks a string that is not played.
const Muted = -1

// Fingering picks one fret per string, or Muted, so the played notes cover
// every class in classes. Fretted notes stay inside a window of span frets;
// open strings are always allowed. Windows are tried from the nut up to
// maxFret and the first hit wins; a maxFret of 0 allows open strings only. A shape with classes[0] as its lowest note
// is preferred over one without.
func Fingering(t *Tuning, classes []pitch.Class, span, maxFret int) ([]int, error) {
	if len(classes) == 0 || span < 1 || maxFret < 0 {
		return nil, errors.Wrapf(ErrNoFingering, "%d classes, span %d, max fret %d", len(classes), span, maxFret)
	}
	for _, rootInBass := range []bool{true, false} {
		for start := min(1, maxFret); start <= maxFret; start++ {
			f := &finder{
				tuning:     t,
				classes:    classes,
				rootInBass: rootInBass,
				frets:      make([]int, len(t.Strings)),
			}
			f.options = f.candidates(start, min(start+span-1, maxFret))
			if f.search(0) {
				return f.frets, nil
			}
		}
	}
	return nil, errors.Wrapf(ErrNoFingering, "tuning %q", t.ID)
}

type finder struct {
	tuning     *Tuning
	classes    []pitch.Class
	rootInBass bool
	options    [][]int
	frets      []int
}

// candidates lists, per string, the frets in [lo, hi] plus the open string
// that sound a chord tone, lowest first, then Muted.
func (f *finder) candidates(lo, hi int) [][]int {
	res := make([][]int, len(f.tuning.Strings))
	for s := range f.tuning.Strings {
		for fret := 0; fret <= hi; fret++ {
			if fret > 0 && fret < lo {
				continue
			}
			p, err := f.tuning.At(s, fret, pitch.FavorSharps)
			if err != nil {
				break
			}
			if indexOf(f.classes, p.Class()) >= 0 {
				res[s] = append(res[s], fret)
			}
		}
		res[s] = append(res[s], Muted)
	}
	return res
}

func (f *finder) search(s int) bool {
	if s == len(f.frets) {
		return f.accept()
	}
	for _, fret := range f.options[s] {
		f.frets[s] = fret
		if f.search(s + 1) {
			return true
		}
	}
	return false
}

func (f *finder) accept() bool {
	covered := make([]bool, len(f.classes))
	var bass pitch.Pitch
	played := 0
	for s, fret := range f.frets {
		if fret == Muted {
			continue
		}
		p, err := f.tuning.At(s, fret, pitch.FavorSharps)
		if err != nil {
			return false
		}
		covered[indexOf(f.classes, p.Class())] = true
		if played == 0 || p.Less(bass) {
			bass = p
		}
		played++
	}
	for _, ok := range covered {
		if !ok {
			return false
		}
	}
	return !f.rootInBass || bass.Class().Equal(f.classes[0])
}
