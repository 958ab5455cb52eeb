// Package audio synthesises the clock's tick and plays it through raylib.
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	DefaultSampleRate beep.SampleRate = 44100
	TickDuration                      = 30 * time.Millisecond

	// tickDecay is the exponential decay rate of the click, per second.
	tickDecay = 150.0
)

// sine is an endless sine oscillator.
type sine struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// decay multiplies a stream by exp(-rate*t).
type decay struct {
	streamer beep.Streamer
	rate     float64
	position int
	sr       beep.SampleRate
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.position) / float64(d.sr)
		g := math.Exp(-d.rate * t)
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewTick returns a finite streamer producing one decaying sine click.
func NewTick(sr beep.SampleRate, duration time.Duration, freq, volume float64) beep.Streamer {
	osc := &sine{freq: freq, rate: sr}
	shaped := &decay{streamer: osc, rate: tickDecay, sr: sr}
	return beep.Take(sr.N(duration), newVolume(shaped, volume))
}

// SynthesizeTick renders the tick as signed 16-bit mono samples.
func SynthesizeTick(sr beep.SampleRate, duration time.Duration, freq, volume float64) []int16 {
	stream := NewTick(sr, duration, freq, volume)

	out := make([]int16, 0, sr.N(duration))
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, toInt16(buf[i][0]))
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// PCMBytes encodes samples as little-endian 16-bit PCM.
func PCMBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}
