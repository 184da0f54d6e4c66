package polysynth

import "testing"

func newTestPolyphonic() *Polyphonic {
	return NewPolyphonic(1000.0,
		0.01, 0.01, 0.5, 0.05,
		0.01, 0.01, 1.0, 0.05,
		0.9, 0.0,
	)
}

func TestPolyphonicNoteOnCreatesVoice(t *testing.T) {
	p := newTestPolyphonic()
	p.NoteOn(60, 1.0)
	if !p.NoteActive(60) {
		t.Fatalf("note 60 should be active after NoteOn")
	}
}

func TestPolyphonicRetriggerReusesVoice(t *testing.T) {
	p := newTestPolyphonic()
	p.NoteOn(60, 0.5)
	v1 := p.notes[60]
	p.NoteOn(60, 1.0)
	v2 := p.notes[60]
	if v1 != v2 {
		t.Fatalf("retriggering the same note allocated a new voice")
	}
	if len(p.notes) != 1 {
		t.Fatalf("expected exactly one voice, got %d", len(p.notes))
	}
}

func TestPolyphonicSpuriousNoteOffIgnored(t *testing.T) {
	p := newTestPolyphonic()
	p.NoteOff(60) // never played; must not panic or create state
	if len(p.notes) != 0 {
		t.Fatalf("spurious NoteOff created voice state")
	}
}

func TestPolyphonicSweepsDeadVoices(t *testing.T) {
	p := newTestPolyphonic()
	p.NoteOn(60, 1.0)
	p.NoteOff(60)

	for i := 0; i < int(0.3*p.rate); i++ {
		p.Next()
	}
	if _, ok := p.notes[60]; ok {
		t.Fatalf("dead voice not swept from note map")
	}
}

func TestPolyphonicMultipleNotesAreIndependent(t *testing.T) {
	p := newTestPolyphonic()
	p.NoteOn(60, 1.0)
	p.NoteOn(64, 1.0)
	p.NoteOff(60)

	for i := 0; i < int(0.3*p.rate); i++ {
		p.Next()
	}
	if p.NoteActive(60) {
		t.Fatalf("released note still active")
	}
	if !p.NoteActive(64) {
		t.Fatalf("unrelated note was deactivated")
	}
}

func TestPolyphonicBroadcastsSettingsToLiveVoices(t *testing.T) {
	p := newTestPolyphonic()
	p.NoteOn(60, 1.0)
	p.SetFilterCutoff(0.2)
	v := p.notes[60]
	if v.filter.cutoffThresh != 0.2 {
		t.Fatalf("filter cutoff not broadcast to live voice: %v", v.filter.cutoffThresh)
	}
}

func TestNoteToFreqA4(t *testing.T) {
	freq := noteToFreq(69)
	if freq < 439.9 || freq > 440.1 {
		t.Fatalf("note 69 should be 440Hz, got %v", freq)
	}
}
