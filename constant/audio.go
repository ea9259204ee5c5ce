package constant

// Audio synthesis
const (
	// AudioSampleRate for speaker playback and sample generation
	AudioSampleRate = 44100

	// AudioBufferMs is the speaker buffer length in milliseconds
	AudioBufferMs = 100

	// StepFreqHz is the footstep blip base frequency
	StepFreqHz = 110.0

	// StepDurationMs is the footstep blip length
	StepDurationMs = 60

	// StepAttackSec / StepReleaseSec shape the blip envelope
	StepAttackSec  = 0.005
	StepReleaseSec = 0.04

	// StepGain keeps footsteps quiet relative to full scale
	StepGain = 0.25
)
