//go:build !linux

package input

import (
	"github.com/lixenwraith/block-walker/event"
)

// PollGamepad is a no-op where the kernel joystick API is unavailable.
func PollGamepad(dev string, q *event.Queue, stop <-chan struct{}) {
	<-stop
}
