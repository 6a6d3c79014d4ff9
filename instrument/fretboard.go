package instrument

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
)

// Mark is a highlighted fret.
type Mark struct {
	Fret  int
	Pitch pitch.Pitch
	Root  bool
}

// Board holds the marked frets of every string, in tuning order.
type Board struct {
	Tuning *Tuning
	Frets  int
	Marks  [][]Mark
}

// Fretboard marks every fret from 0 to frets whose pitch belongs to classes.
// Marked pitches take the spelling of the class they match, and classes[0]
// is flagged as the root. Frets above pitch.MaxPitch are left out.
func Fretboard(t *Tuning, classes []pitch.Class, frets int, mode pitch.AccidentalMode) (*Board, error) {
	if frets < 0 {
		return nil, errors.Wrapf(pitch.ErrRange, "fret count %d", frets)
	}
	board := &Board{Tuning: t, Frets: frets, Marks: make([][]Mark, len(t.Strings))}
	for s := range t.Strings {
		for fret := 0; fret <= frets; fret++ {
			p, err := t.At(s, fret, mode)
			if err != nil {
				break
			}
			i := indexOf(classes, p.Class())
			if i < 0 {
				continue
			}
			if respelled, err := respell(p, classes[i]); err == nil {
				p = respelled
			}
			board.Marks[s] = append(board.Marks[s], Mark{Fret: fret, Pitch: p, Root: i == 0})
		}
	}
	return board, nil
}

// respell gives p the spelling of c, which must be enharmonic to it.
func respell(p pitch.Pitch, c pitch.Class) (pitch.Pitch, error) {
	for _, octave := range []int{p.Octave() - 1, p.Octave(), p.Octave() + 1} {
		q, err := pitch.NewPitch(c, octave)
		if err == nil && q.Absolute() == p.Absolute() {
			return q, nil
		}
	}
	return p, errors.Wrapf(pitch.ErrRange, "%v cannot be spelled %v", p, c)
}

func indexOf(classes []pitch.Class, c pitch.Class) int {
	for i, v := range classes {
		if v.Equal(c) {
			return i
		}
	}
	return -1
}

func (b *Board) mark(s, fret int) (Mark, bool) {
	for _, m := range b.Marks[s] {
		if m.Fret == fret {
			return m, true
		}
	}
	return Mark{}, false
}

func cell(s string) string {
	if len(s) >= 3 {
		return s
	}
	return "-" + s + strings.Repeat("-", 2-len(s))
}

// Render draws the board as ASCII tab, highest string on top:
//
//	    0    1   2   3
//	E4 -E-||---|---|-G-|
func Render(w io.Writer, b *Board) error {
	var sb strings.Builder
	sb.WriteString("   ")
	sb.WriteString(fmt.Sprintf("%2d ", 0))
	sb.WriteString("  ")
	for fret := 1; fret <= b.Frets; fret++ {
		sb.WriteString(fmt.Sprintf("%2d  ", fret))
	}
	sb.WriteString("\n")

	for s := len(b.Tuning.Strings) - 1; s >= 0; s-- {
		sb.WriteString(fmt.Sprintf("%-3s", b.Tuning.Strings[s].String()))
		for fret := 0; fret <= b.Frets; fret++ {
			label := ""
			if m, ok := b.mark(s, fret); ok {
				label = m.Pitch.Class().String()
			}
			sb.WriteString(cell(label))
			if fret == 0 {
				sb.WriteString("||")
			} else {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
