package render

// Cell is one terminal cell: a rune plus foreground and background color.
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is the frame compositor backed by a flat cell array. One
// buffer persists across frames; Resize reallocates only when capacity
// is insufficient.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RGBBlack, Bg: RGBBlack}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetBg paints a cell background, keeping it a blank rune.
func (b *Buffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: ' ', Fg: RGBBlack, Bg: bg}
}

// Set writes a full cell.
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// At returns the cell at x,y, or a zero cell out of bounds.
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// WriteString draws text left to right over the existing backgrounds.
func (b *Buffer) WriteString(x, y int, s string, fg RGB) {
	for _, r := range s {
		if b.inBounds(x, y) {
			idx := y*b.width + x
			b.cells[idx].Rune = r
			b.cells[idx].Fg = fg
		}
		x++
	}
}
