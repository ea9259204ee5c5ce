package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/block-walker/constant"
)

// Engine owns speaker state and the pre-rendered footstep sound.
// Initialization failure is non-fatal: a disabled engine swallows
// every play call so the game runs silent.
type Engine struct {
	enabled bool
	step    *beep.Buffer
}

// NewEngine initializes the speaker and bakes the footstep sample.
// The returned error is informational; the engine is always usable.
func NewEngine() (*Engine, error) {
	e := &Engine{}

	sr := beep.SampleRate(constant.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(constant.AudioBufferMs*time.Millisecond)); err != nil {
		return e, err
	}

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	e.step = beep.NewBuffer(format)
	e.step.Append(&monoStreamer{samples: footstepSamples()})
	e.enabled = true
	return e, nil
}

// PlayStep fires one footstep blip. Non-blocking; beep mixes
// overlapping plays.
func (e *Engine) PlayStep() {
	if !e.enabled {
		return
	}
	speaker.Play(e.step.Streamer(0, e.step.Len()))
}

// Close releases the speaker.
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}

// monoStreamer adapts a floatBuffer to beep's stereo stream interface.
type monoStreamer struct {
	samples floatBuffer
	pos     int
}

func (m *monoStreamer) Stream(samples [][2]float64) (int, bool) {
	if m.pos >= len(m.samples) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if m.pos >= len(m.samples) {
			break
		}
		v := m.samples[m.pos]
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
		n++
	}
	return n, true
}

func (m *monoStreamer) Err() error {
	return nil
}
