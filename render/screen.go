package render

import (
	"github.com/gdamore/tcell/v2"
)

// Surface owns the tcell screen: init, mouse reporting, event polling
// and the cell-buffer blit. Everything above it works on Buffer and
// never touches tcell state directly.
type Surface struct {
	screen tcell.Screen
}

func NewSurface() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	return &Surface{screen: screen}, nil
}

func (s *Surface) Size() (int, int) {
	return s.screen.Size()
}

// PollEvent blocks until the next terminal event. Runs on its own
// goroutine; the loop consumes translated events from the queue.
func (s *Surface) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Flush blits the whole buffer and presents it. Full blit each frame;
// tcell diffs against its own back buffer so only changed cells reach
// the terminal.
func (s *Surface) Flush(buf *Buffer) {
	width, height := buf.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := buf.At(x, y)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(cell.Fg.R), int32(cell.Fg.G), int32(cell.Fg.B))).
				Background(tcell.NewRGBColor(int32(cell.Bg.R), int32(cell.Bg.G), int32(cell.Bg.B)))
			s.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	s.screen.Show()
}

// Sync forces a full repaint, used after resize.
func (s *Surface) Sync() {
	s.screen.Sync()
}

// Fini restores the terminal. Safe to call once during shutdown.
func (s *Surface) Fini() {
	s.screen.Fini()
}
