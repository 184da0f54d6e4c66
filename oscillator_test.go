package polysynth

import (
	"math"
	"testing"
)

func TestOscillatorPhaseStaysInRange(t *testing.T) {
	osc := NewOscillator(44100)
	osc.SetFreq(440)

	for i := 0; i < 44100; i++ {
		osc.Next()
		if osc.phase < 0 || osc.phase >= twoPi {
			t.Fatalf("phase out of range: %v", osc.phase)
		}
	}
}

func TestOscillatorMutedDoesNotAdvancePhase(t *testing.T) {
	osc := NewOscillator(44100)
	osc.SetFreq(440)
	osc.Mute()

	start := osc.phase
	for i := 0; i < 100; i++ {
		if v := osc.Next(); v != 0 {
			t.Fatalf("muted oscillator produced %v, want 0", v)
		}
	}
	if osc.phase != start {
		t.Fatalf("muted oscillator advanced phase: %v -> %v", start, osc.phase)
	}
}

func TestOscillatorSineRange(t *testing.T) {
	osc := NewOscillator(44100)
	osc.SetMode(WaveSine)
	osc.SetFreq(440)

	for i := 0; i < 1000; i++ {
		v := osc.Next()
		if v < -1.0001 || v > 1.0001 {
			t.Fatalf("sine sample out of range: %v", v)
		}
	}
}

func TestOscillatorZeroCrossingRate(t *testing.T) {
	const rate = 44100.0
	osc := NewOscillator(rate)
	osc.SetMode(WaveSine)
	osc.SetFreq(100)

	var crossings int
	prev := osc.Next()
	for i := 0; i < int(rate); i++ {
		cur := osc.Next()
		if (prev < 0) != (cur < 0) {
			crossings++
		}
		prev = cur
	}

	// A 100Hz wave crosses zero twice per cycle, so ~200 crossings/sec.
	if crossings < 180 || crossings > 220 {
		t.Fatalf("unexpected zero-crossing count for 100Hz: %d", crossings)
	}
}

func TestOscillatorPitchClampsToNyquist(t *testing.T) {
	osc := NewOscillator(44100)
	osc.SetFreq(20000)
	osc.SetPitch(1.0)

	if osc.phaseIncrement > math.Pi+1e-9 {
		t.Fatalf("phase increment exceeds Nyquist: %v", osc.phaseIncrement)
	}
}
