package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Goal chime: rising major arpeggio (C5 E5 G5 C6)
var GoalChimeNotes = []float64{523.25, 659.25, 783.99, 1046.50}

const (
	GoalChimeNoteDuration = 90 * time.Millisecond
	GoalChimeAttack       = 5 * time.Millisecond
	GoalChimeRelease      = 40 * time.Millisecond
	GoalChimeVolume       = 0.5 // linear gain
)

// Failure buzz: low saw with a square an octave down
const (
	FailBuzzFrequency = 110.0
	FailBuzzDuration  = 400 * time.Millisecond
	FailBuzzAttack    = 10 * time.Millisecond
	FailBuzzRelease   = 150 * time.Millisecond
	FailBuzzVolume    = 0.35
)

// AudioDrainTimeout bounds how long shutdown waits for a cue to finish
const AudioDrainTimeout = 600 * time.Millisecond
