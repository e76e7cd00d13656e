package bfvm

const DefaultTapeSize = 30000

// Tape is the cell memory and the cursor into it.
type Tape struct {
	Cells  []byte
	Cursor int
}

func NewTape(size int) *Tape {
	if size <= 0 {
		size = DefaultTapeSize
	}
	return &Tape{
		Cells: make([]byte, size),
	}
}

func (t *Tape) Len() int {
	return len(t.Cells)
}

func (t *Tape) Current() byte {
	return t.Cells[t.Cursor]
}

// grow doubles the tape, keeping cells and cursor.
func (t *Tape) grow() {
	newLen := len(t.Cells) * 2
	if newLen == 0 {
		newLen = 1
	}
	cells := make([]byte, newLen)
	copy(cells, t.Cells)
	t.Cells = cells
}
