package polysynth

import "sync"

// periodSamples is the number of int16 samples (stereo-interleaved) the
// render loop produces per iteration before handing the block to the
// Sink. It mirrors a typical ALSA period size from the original audio
// device wrapper.
const periodSamples = 1024

// Sink accepts stereo-interleaved, 16-bit PCM blocks from the render
// loop. pcm.Player implements this by wrapping beep/speaker.
type Sink interface {
	Play(samples []int16)
}

// RenderEngine owns the render goroutine: per period, it pulls one event
// per output sample from an EventQueue, dispatches it against a
// Polyphonic, mixes and clips the result, duplicates mono to stereo, and
// hands the block to a Sink.
type RenderEngine struct {
	polyphonic *Polyphonic
	queue      *EventQueue

	volume float64

	samples []int16
	tap     func(float64)

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
}

// NewRenderEngine creates a RenderEngine driving polyphonic from events
// popped off queue.
func NewRenderEngine(polyphonic *Polyphonic, queue *EventQueue) *RenderEngine {
	return &RenderEngine{
		polyphonic: polyphonic,
		queue:      queue,
		volume:     1.0,
		samples:    make([]int16, periodSamples),
	}
}

// SetVolume sets the master output gain, clamped to [0.0, 1.5].
func (e *RenderEngine) SetVolume(value float64) {
	e.mu.Lock()
	e.volume = clamp(value, 0.0, 1.5)
	e.mu.Unlock()
}

// SetTap installs a callback invoked with each mixed, pre-clip sample as
// it's rendered. Intended for visualization; nil disables it. Never
// called concurrently with itself.
func (e *RenderEngine) SetTap(tap func(float64)) {
	e.mu.Lock()
	e.tap = tap
	e.mu.Unlock()
}

// Start launches the render goroutine, pushing stereo PCM blocks to sink
// until Stop is called.
func (e *RenderEngine) Start(sink Sink) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()

	e.wg.Add(1)
	go e.run(sink)
}

// Stop signals the render goroutine to exit and blocks until it has.
func (e *RenderEngine) Stop() {
	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
	e.wg.Wait()
}

func (e *RenderEngine) run(sink Sink) {
	defer e.wg.Done()

	for e.isRunning() {
		for i := 0; i < len(e.samples); i += 2 {
			ev := e.queue.Pop()

			e.mu.Lock()
			e.dispatch(ev)
			out := e.volume * e.polyphonic.Next()
			tap := e.tap
			e.mu.Unlock()

			if tap != nil {
				tap(out)
			}

			s := clip(out)
			e.samples[i] = s
			e.samples[i+1] = s
		}
		sink.Play(e.samples)
	}
}

func (e *RenderEngine) isRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// NoteActive reports whether note currently has an active voice. It takes
// the same mutex the render goroutine holds while applying events and
// mixing, since Polyphonic's note map is not otherwise safe for
// concurrent access.
func (e *RenderEngine) NoteActive(note int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.polyphonic.NoteActive(note)
}

// dispatch applies a single popped event to the engine's Polyphonic,
// mirroring the original audio thread's per-sample MIDI switch.
// Control-change IDs map onto envelope stages and filter parameters:
// 1-4 are the amplitude ADSR stages, 5 is filter cutoff, 6 is filter
// resonance, and 7-10 are the filter ADSR stages.
func (e *RenderEngine) dispatch(ev Event) {
	switch ev.Kind {
	case EventNoteOn:
		e.polyphonic.NoteOn(ev.Note, ev.Velocity)
	case EventNoteOff:
		e.polyphonic.NoteOff(ev.Note)
	case EventPitchBend:
		e.polyphonic.SetPitch(ev.Pitch)
	case EventWaveform:
		e.polyphonic.SetWaveform(ev.Wave)
	case EventControl:
		switch {
		case ev.ID >= 1 && ev.ID <= 4:
			e.polyphonic.SetADSR(EnvelopeStage(ev.ID-1), ev.Value)
		case ev.ID == 5:
			e.polyphonic.SetFilterCutoff(ev.Value)
		case ev.ID == 6:
			e.polyphonic.SetFilterResonance(ev.Value)
		case ev.ID >= 7 && ev.ID <= 10:
			e.polyphonic.SetFilterADSR(EnvelopeStage(ev.ID-7), ev.Value)
		}
	}
}

// clip converts a sample in roughly [-1.0, 1.0] to a clipped 16-bit
// signed integer.
func clip(x float64) int16 {
	if x > 1.0 {
		x = 1.0
	} else if x < -1.0 {
		x = -1.0
	}
	return int16(32767.0 * x)
}
