//go:build linux

package input

import (
	"encoding/binary"
	"os"

	"github.com/lixenwraith/block-walker/event"
)

// Linux kernel joystick API record (linux/joystick.h): fixed 8 bytes,
// little-endian on every platform the API exists on.
type jsRecord struct {
	Time   uint32 // event timestamp, ms
	Value  int16  // axis position or button state
	Type   uint8  // JS_EVENT_BUTTON / JS_EVENT_AXIS (| JS_EVENT_INIT)
	Number uint8  // axis/button index
}

const (
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80

	// axisScale normalizes int16 deflection to [-1,1]
	axisScale = 1.0 / 32767.0
)

// PollGamepad reads joystick records from dev (typically
// /dev/input/js0) and pushes axis/button events into the queue until
// stop closes. A missing or unreadable device is a silent no-op, not an
// error: gamepad input is optional.
func PollGamepad(dev string, q *event.Queue, stop <-chan struct{}) {
	f, err := os.Open(dev)
	if err != nil {
		return
	}

	// Unblock the read loop on shutdown
	go func() {
		<-stop
		f.Close()
	}()

	var rec jsRecord
	for {
		if err := binary.Read(f, binary.LittleEndian, &rec); err != nil {
			return
		}

		switch rec.Type &^ jsEventInit {
		case jsEventAxis:
			if rec.Number < 4 {
				q.Push(event.DeviceEvent{
					Type:  event.TypePadAxis,
					Axis:  int(rec.Number),
					Value: float64(rec.Value) * axisScale,
				})
			}
		case jsEventButton:
			q.Push(event.DeviceEvent{
				Type:    event.TypePadButton,
				Button:  int(rec.Number),
				Pressed: rec.Value != 0,
			})
		}
	}
}
