package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/block-walker/event"
)

// FromScreenEvent translates a tcell event into zero or more device
// events. Runs on the terminal poll goroutine; produced events are
// pushed into the MPSC queue and consumed by the frame loop.
func FromScreenEvent(ev tcell.Event) []event.DeviceEvent {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(tev)

	case *tcell.EventMouse:
		x, y := tev.Position()
		out := []event.DeviceEvent{{Type: event.TypeMouseMove, X: x, Y: y}}
		if tev.Buttons()&tcell.Button1 != 0 {
			out = append(out, event.DeviceEvent{Type: event.TypeMouseClick, X: x, Y: y})
		}
		return out

	case *tcell.EventResize:
		w, h := tev.Size()
		return []event.DeviceEvent{{Type: event.TypeResize, X: w, Y: h}}
	}
	return nil
}

func translateKey(ev *tcell.EventKey) []event.DeviceEvent {
	switch ev.Key() {
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		return []event.DeviceEvent{{Type: event.TypeKey, Key: r}}

	// Arrow keys alias WASD so the latch path is shared
	case tcell.KeyUp:
		return []event.DeviceEvent{{Type: event.TypeKey, Key: 'w'}}
	case tcell.KeyDown:
		return []event.DeviceEvent{{Type: event.TypeKey, Key: 's'}}
	case tcell.KeyLeft:
		return []event.DeviceEvent{{Type: event.TypeKey, Key: 'a'}}
	case tcell.KeyRight:
		return []event.DeviceEvent{{Type: event.TypeKey, Key: 'd'}}

	case tcell.KeyEscape:
		return []event.DeviceEvent{{Type: event.TypeEscape}}

	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return []event.DeviceEvent{{Type: event.TypeQuit}}
	}
	return nil
}
