package interval

// Quantity is the letter distance of an interval, from Unison to Fourteenth
// (two octaves of letter steps).
type Quantity int8

const (
	Unison Quantity = iota
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
	Octave
	Ninth
	Tenth
	Eleventh
	Twelfth
	Thirteenth
	Fourteenth
)

const quantityCount = 14

var quantityNames = [quantityCount]string{
	"Unison", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh",
	"Octave", "Ninth", "Tenth", "Eleventh", "Twelfth", "Thirteenth", "Fourteenth",
}

// invalid marks a (quantity, quality) pair that has no meaning, like a
// "perfect second".
const invalid = -1

// steps[quantity][quality] is the semitone count of every interval the
// package knows about. Columns run Diminished, Minor, Perfect, Major, Augmented.
var steps = [quantityCount][5]int{
	{invalid, invalid, 0, invalid, 1},
	{0, 1, invalid, 2, 3},
	{2, 3, invalid, 4, 5},
	{4, invalid, 5, invalid, 6},
	{6, invalid, 7, invalid, 8},
	{7, 8, invalid, 9, 10},
	{9, 10, invalid, 11, 12},
	{11, invalid, 12, invalid, 13},
	{12, 13, invalid, 14, 15},
	{14, 15, invalid, 16, 17},
	{16, invalid, 17, invalid, 18},
	{18, invalid, 19, invalid, 20},
	{19, 20, invalid, 21, 22},
	{21, 22, invalid, 23, 24},
}

func (q Quantity) valid() bool {
	return q >= Unison && q <= Fourteenth
}

// Number is the 1-based ordinal used in notation: a Third is 3.
func (q Quantity) Number() int {
	return int(q) + 1
}

func (q Quantity) String() string {
	if !q.valid() {
		return "Quantity(?)"
	}
	return quantityNames[q]
}

// IsPerfectType reports whether the quantity takes Perfect rather than
// Major/Minor as its unaltered quality (unisons, fourths, fifths and their
// compounds).
func (q Quantity) IsPerfectType() bool {
	switch q % 7 {
	case Unison, Fourth, Fifth:
		return true
	}
	return false
}

// DefaultQuality is the quality assumed when notation omits it.
func (q Quantity) DefaultQuality() Quality {
	if q.IsPerfectType() {
		return Perfect
	}
	return Major
}

// IsValid reports whether the pair names a real interval.
func IsValid(q Quantity, ql Quality) bool {
	if !q.valid() || !ql.valid() {
		return false
	}
	return steps[q][ql] != invalid
}

// SemitoneCount returns the table value for the pair.
func SemitoneCount(q Quantity, ql Quality) (int, error) {
	if !IsValid(q, ql) {
		return 0, errorInvalid(q, ql)
	}
	return steps[q][ql], nil
}

// qualityFor searches the qualities of q, Diminished first, for one that
// spans exactly semitones.
func qualityFor(q Quantity, semitones int) (Quality, bool) {
	if !q.valid() {
		return 0, false
	}
	for ql := Diminished; ql <= Augmented; ql++ {
		if steps[q][ql] != invalid && steps[q][ql] == semitones {
			return ql, true
		}
	}
	return 0, false
}
