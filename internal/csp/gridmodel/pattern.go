package gridmodel

// PatternFor returns the slot's current letter pattern: upper-case letters
// for filled cells, '.' for unfilled Open cells. Length always equals
// slot.Length.
func PatternFor(slot *Slot) string {
	pattern := make([]byte, len(slot.Cells))
	for i, cell := range slot.Cells {
		if cell.Letter == 0 {
			pattern[i] = '.'
		} else {
			pattern[i] = byte(cell.Letter)
		}
	}
	return string(pattern)
}

// ApplyWord writes word into the slot's cells, overwriting any existing
// letters. Callers are responsible for ensuring len(word) == slot.Length.
func ApplyWord(slot *Slot, word string) {
	for i, cell := range slot.Cells {
		cell.Letter = rune(word[i])
	}
}

// ClearWord resets every cell of the slot to unfilled, unless another
// already-assigned slot (identified by stillFilled) also covers that cell.
func ClearWord(slot *Slot, stillFilled func(cell *Cell) bool) {
	for _, cell := range slot.Cells {
		if stillFilled == nil || !stillFilled(cell) {
			cell.Letter = 0
		}
	}
}
