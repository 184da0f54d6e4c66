// Package pcm wraps github.com/gopxl/beep and its speaker backend as a
// blocking polysynth.Sink, the way whyrusleeping-synth/main.go's
// Controller/Recorder feed beep/speaker from a synthesized mix.
package pcm

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// block carries one render period's stereo-interleaved samples to the
// beep streamer goroutine, plus a channel that's closed once speaker's
// mixer has actually consumed them.
type block struct {
	samples []int16
	done    chan struct{}
}

// Player is a polysynth.Sink backed by beep/speaker. Play blocks until
// the engine's block has been pulled into the audio callback, matching
// the blocking play() contract original_source/AudioDevice.cpp exposes.
type Player struct {
	rate   int
	period int

	blocks chan block
	pos    int
	cur    block
}

// Open initializes the speaker backend at rate with a period of
// periodSamples stereo-interleaved int16s, and starts streaming.
func Open(rate, periodSamples int) (*Player, error) {
	sr := beep.SampleRate(rate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}

	p := &Player{
		rate:   rate,
		period: periodSamples,
		blocks: make(chan block),
	}
	speaker.Play(p)
	return p, nil
}

// Rate reports the configured sample rate.
func (p *Player) Rate() int { return p.rate }

// PeriodSamples reports the configured period length.
func (p *Player) PeriodSamples() int { return p.period }

// Play hands one render period's samples to the speaker backend and
// blocks until they've been consumed.
func (p *Player) Play(samples []int16) {
	done := make(chan struct{})
	p.blocks <- block{samples: samples, done: done}
	<-done
}

// Stream implements beep.Streamer, pulling queued blocks and converting
// int16 stereo-interleaved samples to beep's [-1,1] float64 pairs.
func (p *Player) Stream(out [][2]float64) (n int, ok bool) {
	for n < len(out) {
		if p.cur.samples == nil || p.pos >= len(p.cur.samples) {
			if p.cur.done != nil {
				close(p.cur.done)
				p.cur = block{}
			}
			select {
			case b := <-p.blocks:
				p.cur = b
				p.pos = 0
			default:
				for i := n; i < len(out); i++ {
					out[i][0], out[i][1] = 0, 0
				}
				return len(out), true
			}
		}

		left := float64(p.cur.samples[p.pos]) / 32767.0
		right := float64(p.cur.samples[p.pos+1]) / 32767.0
		out[n][0] = left
		out[n][1] = right
		p.pos += 2
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (p *Player) Err() error { return nil }
