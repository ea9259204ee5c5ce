package audio

import (
	"math"

	"github.com/lixenwraith/block-walker/constant"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw sine samples at the given frequency
func oscillator(freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(constant.AudioSampleRate)

	for i := 0; i < samples; i++ {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(constant.AudioSampleRate))
	releaseSamples := int(releaseSec * float64(constant.AudioSampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// durationToSamples converts seconds to sample count
func durationToSamples(d float64) int {
	return int(d * float64(constant.AudioSampleRate))
}

// footstepSamples synthesizes one footstep blip: a low sine thump with
// a fast attack and short release, pre-scaled by the footstep gain.
func footstepSamples() floatBuffer {
	buf := oscillator(constant.StepFreqHz, durationToSamples(float64(constant.StepDurationMs)/1000.0))
	applyEnvelope(buf, constant.StepAttackSec, constant.StepReleaseSec)
	for i := range buf {
		buf[i] *= constant.StepGain
	}
	return buf
}
