package polysynth

import "math"

// Polyphonic maps MIDI note numbers to Voices, applying the current
// default waveform/ADSR/filter settings to any newly allocated voice and
// broadcasting parameter changes to every live voice.
type Polyphonic struct {
	rate float64

	waveform WaveKind

	noteADSR   [4]float64
	filterADSR [4]float64

	filterCutoff    float64
	filterResonance float64

	notes map[int]*Voice
}

// NewPolyphonic creates a Polyphonic with the given defaults, matching the
// parameter order of the original Synth's Polyphonic constructor.
func NewPolyphonic(rate float64, a, d, s, r, fa, fd, fs, fr, cutoff, resonance float64) *Polyphonic {
	return &Polyphonic{
		rate:            rate,
		noteADSR:        [4]float64{a, d, s, r},
		filterADSR:      [4]float64{fa, fd, fs, fr},
		filterCutoff:    cutoff,
		filterResonance: resonance,
		notes:           make(map[int]*Voice),
	}
}

// noteToFreq converts a MIDI note number to Hz using A4=440 at note 69.
func noteToFreq(note int) float64 {
	return 440.0 * math.Pow(2.0, (float64(note)-69.0)/12.0)
}

// NoteOn retriggers an existing voice for note, or allocates a new one.
func (p *Polyphonic) NoteOn(note int, velocity float64) {
	if v, ok := p.notes[note]; ok {
		v.NoteOn(velocity)
		return
	}
	freq := noteToFreq(note)
	p.notes[note] = NewVoice(p.rate, p.waveform, freq, velocity, p.noteADSR, p.filterCutoff, p.filterResonance, p.filterADSR)
}

// NoteOff releases the voice for note, if one exists. A spurious NoteOff
// for a note that isn't playing is silently ignored.
func (p *Polyphonic) NoteOff(note int) {
	if v, ok := p.notes[note]; ok {
		v.NoteOff()
	}
}

// NoteActive reports whether note currently has an active voice.
func (p *Polyphonic) NoteActive(note int) bool {
	v, ok := p.notes[note]
	if !ok {
		return false
	}
	return v.IsActive()
}

// SetWaveform updates the default waveform and forwards it to every
// current voice.
func (p *Polyphonic) SetWaveform(wave WaveKind) {
	p.waveform = wave
	for _, v := range p.notes {
		v.SetWave(wave)
	}
}

// SetPitch forwards a pitch-bend change to every current voice.
func (p *Polyphonic) SetPitch(value float64) {
	for _, v := range p.notes {
		v.SetPitch(value)
	}
}

// SetADSR updates the default amplitude envelope stage and forwards it.
func (p *Polyphonic) SetADSR(stage EnvelopeStage, value float64) {
	p.noteADSR[stage] = value
	for _, v := range p.notes {
		v.SetADSR(stage, value)
	}
}

// SetFilterADSR updates the default filter envelope stage and forwards it.
func (p *Polyphonic) SetFilterADSR(stage EnvelopeStage, value float64) {
	p.filterADSR[stage] = value
	for _, v := range p.notes {
		v.SetFilterADSR(stage, value)
	}
}

// SetFilterCutoff updates the default filter cutoff and forwards it.
func (p *Polyphonic) SetFilterCutoff(value float64) {
	p.filterCutoff = value
	for _, v := range p.notes {
		v.SetFilterCutoff(value)
	}
}

// SetFilterResonance updates the default filter resonance and forwards it.
func (p *Polyphonic) SetFilterResonance(value float64) {
	p.filterResonance = value
	for _, v := range p.notes {
		v.SetFilterResonance(value)
	}
}

// Next sweeps inactive voices, sums the remaining ones, and returns the
// (unclipped) mix. Eviction happens during the same pass as summation, the
// Go analogue of the original's "erase while iterating" map scan.
func (p *Polyphonic) Next() float64 {
	var out float64
	for note, v := range p.notes {
		if !v.IsActive() {
			debugf("removing note %d", note)
			delete(p.notes, note)
			continue
		}
		out += v.Next()
	}
	return out
}
