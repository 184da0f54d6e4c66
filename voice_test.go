package polysynth

import "testing"

func TestVoiceActiveUntilEnvelopeReleases(t *testing.T) {
	const rate = 1000.0
	v := NewVoice(rate, WaveSine, 440, 1.0,
		[4]float64{0.01, 0.01, 0.5, 0.05},
		0.9, 0.0,
		[4]float64{0.01, 0.01, 1.0, 0.05},
	)

	if !v.IsActive() {
		t.Fatalf("new voice should be active")
	}

	v.NoteOff()
	for i := 0; i < int(0.3*rate); i++ {
		v.Next()
	}
	if v.IsActive() {
		t.Fatalf("voice still active long after release")
	}
}

func TestVoiceRetriggerUpdatesVelocity(t *testing.T) {
	const rate = 1000.0
	v := NewVoice(rate, WaveSine, 440, 0.5,
		[4]float64{0.01, 0.01, 0.5, 0.2},
		0.9, 0.0,
		[4]float64{0.01, 0.01, 1.0, 0.2},
	)

	v.NoteOn(1.0)
	if v.velocity != 1.0 {
		t.Fatalf("retrigger did not update velocity: %v", v.velocity)
	}
}
