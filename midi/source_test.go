package midi

import (
	"testing"

	"github.com/rakyll/portmidi"

	"github.com/gosynth/polysynth"
)

func TestTranslateNoteOn(t *testing.T) {
	ev, ok := translate(portmidi.Event{Status: 0x90, Data1: 60, Data2: 100})
	if !ok {
		t.Fatalf("expected note-on to translate")
	}
	if ev.Kind != polysynth.EventNoteOn || ev.Note != 60 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Velocity < 0.78 || ev.Velocity > 0.79 {
		t.Fatalf("unexpected velocity scaling: %v", ev.Velocity)
	}
}

func TestTranslateZeroVelocityNoteOnDropped(t *testing.T) {
	_, ok := translate(portmidi.Event{Status: 0x90, Data1: 60, Data2: 0})
	if ok {
		t.Fatalf("zero-velocity note-on should be dropped, not converted to note-off")
	}
}

func TestTranslateNoteOff(t *testing.T) {
	ev, ok := translate(portmidi.Event{Status: 0x80, Data1: 60, Data2: 0})
	if !ok || ev.Kind != polysynth.EventNoteOff || ev.Note != 60 {
		t.Fatalf("unexpected event: %+v ok=%v", ev, ok)
	}
}

func TestTranslatePitchBendCenter(t *testing.T) {
	// Center value is 8192 (Data1=0, Data2=64): (64<<7)|0 = 8192.
	ev, ok := translate(portmidi.Event{Status: 0xE0, Data1: 0, Data2: 64})
	if !ok || ev.Kind != polysynth.EventPitchBend {
		t.Fatalf("unexpected event: %+v ok=%v", ev, ok)
	}
	if ev.Pitch < -0.001 || ev.Pitch > 0.001 {
		t.Fatalf("center pitch bend should be ~0.0, got %v", ev.Pitch)
	}
}

func TestTranslateControl(t *testing.T) {
	ev, ok := translate(portmidi.Event{Status: 0xB0, Data1: 5, Data2: 127})
	if !ok || ev.Kind != polysynth.EventControl || ev.ID != 5 {
		t.Fatalf("unexpected event: %+v ok=%v", ev, ok)
	}
	if ev.Value < 0.99 || ev.Value > 1.01 {
		t.Fatalf("unexpected control value scaling: %v", ev.Value)
	}
}

func TestTranslateUnknownStatusUnhandled(t *testing.T) {
	_, ok := translate(portmidi.Event{Status: 0xF0, Data1: 0, Data2: 0})
	if ok {
		t.Fatalf("unknown status byte should not translate")
	}
}
