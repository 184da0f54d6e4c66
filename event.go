package polysynth

// EventKind discriminates the Event tagged variant.
type EventKind int

const (
	// EventEmpty is the sentinel for "no event this sample."
	EventEmpty EventKind = iota
	EventNoteOn
	EventNoteOff
	EventPitchBend
	EventControl
	// EventWaveform has no MIDI-wire equivalent; the Façade posts it to
	// keep waveform changes flowing through the same queue as everything
	// else that touches Polyphonic, rather than mutating it directly
	// from outside the render thread.
	EventWaveform
)

// Event is the wire format passed between a MIDI-like producer and the
// render thread. Only the fields relevant to Kind are meaningful.
type Event struct {
	Kind EventKind

	Note     int      // NoteOn, NoteOff: 0..127
	Velocity float64  // NoteOn: [0,1]
	Pitch    float64  // PitchBend: [-1,1]
	ID       int      // Control: 1..10
	Value    float64  // Control: [0,1]
	Wave     WaveKind // Waveform
}

// NoteOnEvent builds a NoteOn event.
func NoteOnEvent(note int, velocity float64) Event {
	return Event{Kind: EventNoteOn, Note: note, Velocity: velocity}
}

// NoteOffEvent builds a NoteOff event.
func NoteOffEvent(note int) Event {
	return Event{Kind: EventNoteOff, Note: note}
}

// PitchBendEvent builds a PitchBend event.
func PitchBendEvent(pitch float64) Event {
	return Event{Kind: EventPitchBend, Pitch: pitch}
}

// ControlEvent builds a Control event. id is 1..10.
func ControlEvent(id int, value float64) Event {
	return Event{Kind: EventControl, ID: id, Value: value}
}

// WaveformEvent builds a Waveform event.
func WaveformEvent(wave WaveKind) Event {
	return Event{Kind: EventWaveform, Wave: wave}
}
