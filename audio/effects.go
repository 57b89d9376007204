package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/robot-soccer/constant"
	"github.com/lixenwraith/robot-soccer/engine"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length periodic wave
type oscillator struct {
	freq     float64
	phase    float64
	total    int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of the given frequency that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with a linear attack and release within duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att, rel = total/2, total-total/2
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: total - rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		} else if e.position >= e.releaseStart && e.release > 0 {
			gain = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// GoalChime is a short rising arpeggio
func GoalChime(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(constant.GoalChimeNotes))
	for _, freq := range constant.GoalChimeNotes {
		osc := NewOscillator(freq, constant.GoalChimeNoteDuration, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, constant.GoalChimeNoteDuration,
			constant.GoalChimeAttack, constant.GoalChimeRelease, rate))
	}
	return newVolume(beep.Seq(notes...), constant.GoalChimeVolume)
}

// FailBuzz is a low harsh tone that fades out
func FailBuzz(rate beep.SampleRate) beep.Streamer {
	saw := NewOscillator(constant.FailBuzzFrequency, constant.FailBuzzDuration, WaveSaw, rate)
	sub := NewOscillator(constant.FailBuzzFrequency/2, constant.FailBuzzDuration, WaveSquare, rate)

	mixed := beep.Mix(
		newVolume(saw, 0.7),
		newVolume(sub, 0.3),
	)
	shaped := NewEnvelope(mixed, constant.FailBuzzDuration,
		constant.FailBuzzAttack, constant.FailBuzzRelease, rate)
	return newVolume(shaped, constant.FailBuzzVolume)
}

// OutcomeStreamer returns the cue for a terminal outcome, nil otherwise
func OutcomeStreamer(rate beep.SampleRate, o engine.Outcome) beep.Streamer {
	switch o {
	case engine.OutcomeGoal:
		return GoalChime(rate)
	case engine.OutcomeExhausted:
		return FailBuzz(rate)
	default:
		return nil
	}
}
