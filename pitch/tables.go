package pitch

// spelling is one way of writing an enharmonic index with a letter and an
// accidental.
type spelling struct {
	index      int8
	name       NoteName
	accidental Accidental
}

const semitonesPerOctave = 12

// noSpelling marks an empty cell of the enharmonics table.
const noSpelling = -1

// spellings holds every letter with every accidental in range, 35 in all,
// ordered by enharmonic index and then accidental.
var spellings = [...]spelling{
	{0, NoteD, DoubleFlat},
	{0, NoteC, Natural},
	{0, NoteB, Sharp},
	{1, NoteD, Flat},
	{1, NoteC, Sharp},
	{1, NoteB, DoubleSharp},
	{2, NoteE, DoubleFlat},
	{2, NoteD, Natural},
	{2, NoteC, DoubleSharp},
	{3, NoteF, DoubleFlat},
	{3, NoteE, Flat},
	{3, NoteD, Sharp},
	{4, NoteF, Flat},
	{4, NoteE, Natural},
	{4, NoteD, DoubleSharp},
	{5, NoteG, DoubleFlat},
	{5, NoteF, Natural},
	{5, NoteE, Sharp},
	{6, NoteG, Flat},
	{6, NoteF, Sharp},
	{6, NoteE, DoubleSharp},
	{7, NoteA, DoubleFlat},
	{7, NoteG, Natural},
	{7, NoteF, DoubleSharp},
	{8, NoteA, Flat},
	{8, NoteG, Sharp},
	{9, NoteB, DoubleFlat},
	{9, NoteA, Natural},
	{9, NoteG, DoubleSharp},
	{10, NoteC, DoubleFlat},
	{10, NoteB, Flat},
	{10, NoteA, Sharp},
	{11, NoteC, Flat},
	{11, NoteB, Natural},
	{11, NoteA, DoubleSharp},
}

// enharmonics[index][accidental+2] is the row of spellings written with that
// accidental at that index, or noSpelling. No index has two spellings sharing
// an accidental.
var enharmonics = [semitonesPerOctave][accidentalCount]int8{
	{0, noSpelling, 1, 2, noSpelling},
	{noSpelling, 3, noSpelling, 4, 5},
	{6, noSpelling, 7, noSpelling, 8},
	{9, 10, noSpelling, 11, noSpelling},
	{noSpelling, 12, 13, noSpelling, 14},
	{15, noSpelling, 16, 17, noSpelling},
	{noSpelling, 18, noSpelling, 19, 20},
	{21, noSpelling, 22, noSpelling, 23},
	{noSpelling, 24, noSpelling, 25, noSpelling},
	{26, noSpelling, 27, noSpelling, 28},
	{29, 30, noSpelling, 31, noSpelling},
	{noSpelling, 32, 33, noSpelling, 34},
}

// spellingAt returns the row for index and accidental, if the cell is filled.
func spellingAt(index int, a Accidental) (spelling, bool) {
	row := enharmonics[mod(index, semitonesPerOctave)][a.column()]
	if row == noSpelling {
		return spelling{}, false
	}
	return spellings[row], true
}
