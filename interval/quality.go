package interval

// Quality is the chromatic component of an interval.
type Quality int8

const (
	Diminished Quality = iota
	Minor
	Perfect
	Major
	Augmented
)

var qualitySymbols = [...]string{"d", "m", "P", "M", "A"}
var qualityShortNames = [...]string{"dim", "min", "perf", "maj", "aug"}
var qualityNames = [...]string{"Diminished", "Minor", "Perfect", "Major", "Augmented"}

func (q Quality) valid() bool {
	return q >= Diminished && q <= Augmented
}

// Symbol returns the one letter code used in interval notation ("M" for Major).
func (q Quality) Symbol() string {
	if !q.valid() {
		return "?"
	}
	return qualitySymbols[q]
}

func (q Quality) ShortName() string {
	if !q.valid() {
		return "?"
	}
	return qualityShortNames[q]
}

func (q Quality) String() string {
	if !q.valid() {
		return "Quality(?)"
	}
	return qualityNames[q]
}

func qualityFromSymbol(r byte) (Quality, bool) {
	for i, s := range qualitySymbols {
		if s[0] == r {
			return Quality(i), true
		}
	}
	return 0, false
}
