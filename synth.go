package polysynth

// Default patch: short attack, medium decay and sustain, long release.
// The filter's own ADSR produces a bright sound with no resonance and a
// high cutoff (original_source/Synth.cpp's init()).
const (
	defaultAttack  = 0.01
	defaultDecay   = 0.5
	defaultSustain = 0.5
	defaultRelease = 1.0

	defaultFilterAttack  = 0.2
	defaultFilterDecay   = 0.2
	defaultFilterSustain = 1.0
	defaultFilterRelease = 1.0

	defaultFilterCutoff    = 0.99
	defaultFilterResonance = 0.0
)

// Synth is the public control surface. It owns the event queue, the
// Polyphonic voice bank, and the render engine, and exposes clamped
// setters that post events to the queue rather than mutating Polyphonic
// directly; once started, Polyphonic is only touched while holding
// RenderEngine's mutex.
type Synth struct {
	queue  *EventQueue
	engine *RenderEngine
}

// NewSynth creates a Synth at the given sample rate with the default
// patch (square wave, short attack, long release).
func NewSynth(rate float64) *Synth {
	queue := NewEventQueue()
	poly := NewPolyphonic(rate,
		defaultAttack, defaultDecay, defaultSustain, defaultRelease,
		defaultFilterAttack, defaultFilterDecay, defaultFilterSustain, defaultFilterRelease,
		defaultFilterCutoff, defaultFilterResonance,
	)
	poly.SetWaveform(WaveSquare)

	return &Synth{
		queue:  queue,
		engine: NewRenderEngine(poly, queue),
	}
}

// Queue returns the event queue backing this Synth, so a MIDI source (or
// any other producer) can push events without going through a setter.
func (s *Synth) Queue() *EventQueue {
	return s.queue
}

// Start launches the render goroutine against sink.
func (s *Synth) Start(sink Sink) {
	s.engine.Start(sink)
}

// Stop halts the render goroutine and waits for it to exit.
func (s *Synth) Stop() {
	s.engine.Stop()
}

// SetVolume sets master output gain. Values are clamped to [0.0, 1.5].
func (s *Synth) SetVolume(value float64) {
	s.engine.SetVolume(clamp(value, 0.0, 1.5))
}

// SetWaveform changes the oscillator waveform used by every voice,
// current and future.
func (s *Synth) SetWaveform(wave WaveKind) {
	s.queue.Push(WaveformEvent(wave))
}

// SetAttack sets the amplitude envelope's attack time, clamped to
// [0.01, 1.5] seconds.
func (s *Synth) SetAttack(value float64) {
	s.queue.Push(ControlEvent(1, clamp(value, 0.01, 1.5)))
}

// SetDecay sets the amplitude envelope's decay time, clamped to
// [0.01, 1.5] seconds.
func (s *Synth) SetDecay(value float64) {
	s.queue.Push(ControlEvent(2, clamp(value, 0.01, 1.5)))
}

// SetSustain sets the amplitude envelope's sustain level, clamped to
// [0.01, 1.5].
func (s *Synth) SetSustain(value float64) {
	s.queue.Push(ControlEvent(3, clamp(value, 0.01, 1.5)))
}

// SetRelease sets the amplitude envelope's release time, clamped to
// [0.01, 1.5] seconds.
func (s *Synth) SetRelease(value float64) {
	s.queue.Push(ControlEvent(4, clamp(value, 0.01, 1.5)))
}

// SetCutoff sets the filter cutoff threshold, clamped to [0.0, 0.99].
func (s *Synth) SetCutoff(value float64) {
	s.queue.Push(ControlEvent(5, clamp(value, 0.0, 0.99)))
}

// SetResonance sets the filter resonance, clamped to [0.0, 0.99].
func (s *Synth) SetResonance(value float64) {
	s.queue.Push(ControlEvent(6, clamp(value, 0.0, 0.99)))
}

// SetFilterAttack sets the filter envelope's attack time, clamped to
// [0.01, 1.5] seconds.
func (s *Synth) SetFilterAttack(value float64) {
	s.queue.Push(ControlEvent(7, clamp(value, 0.01, 1.5)))
}

// SetFilterDecay sets the filter envelope's decay time, clamped to
// [0.01, 1.5] seconds.
func (s *Synth) SetFilterDecay(value float64) {
	s.queue.Push(ControlEvent(8, clamp(value, 0.01, 1.5)))
}

// SetFilterSustain sets the filter envelope's sustain level, clamped to
// [0.01, 1.5].
func (s *Synth) SetFilterSustain(value float64) {
	s.queue.Push(ControlEvent(9, clamp(value, 0.01, 1.5)))
}

// SetFilterRelease sets the filter envelope's release time, clamped to
// [0.01, 1.5] seconds.
func (s *Synth) SetFilterRelease(value float64) {
	s.queue.Push(ControlEvent(10, clamp(value, 0.01, 1.5)))
}

// SetPitch applies a pitch bend to every voice, clamped to [-1.0, 1.0].
func (s *Synth) SetPitch(value float64) {
	s.queue.Push(PitchBendEvent(clamp(value, -1.0, 1.0)))
}

// NoteOn turns a note on. velocity is clamped to [0.0, 1.0].
func (s *Synth) NoteOn(note int, velocity float64) {
	s.queue.Push(NoteOnEvent(note, clamp(velocity, 0.0, 1.0)))
}

// NoteOff releases a note. Releasing a note that isn't playing is a
// no-op.
func (s *Synth) NoteOff(note int) {
	s.queue.Push(NoteOffEvent(note))
}

// SetTap installs a per-sample callback on the render engine, used by
// the visualizer. nil disables it.
func (s *Synth) SetTap(tap func(float64)) {
	s.engine.SetTap(tap)
}

// NoteActive reports whether note currently has an active voice.
func (s *Synth) NoteActive(note int) bool {
	return s.engine.NoteActive(note)
}
