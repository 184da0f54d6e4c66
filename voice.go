package polysynth

// Voice is a single note-in-flight: an oscillator, an amplitude envelope, a
// filter-modulation envelope, and a filter.
type Voice struct {
	isActive bool
	velocity float64

	filter    *Filter
	env       *Envelope
	filterEnv *Envelope
	osc       *Oscillator
}

// NewVoice constructs a Voice from a Polyphonic's current defaults. The
// filter always starts in Lowpass mode.
func NewVoice(rate float64, wave WaveKind, freq, velocity float64, adsr [4]float64, cutoff, resonance float64, filterADSR [4]float64) *Voice {
	v := &Voice{
		filter:    NewFilter(cutoff, resonance),
		env:       NewEnvelope(rate, adsr),
		filterEnv: NewEnvelope(rate, filterADSR),
		osc:       NewOscillator(rate),
	}
	v.filter.SetMode(FilterLowpass)
	v.osc.SetMode(wave)
	v.osc.SetFreq(freq)
	v.osc.Unmute()
	v.NoteOn(velocity)
	return v
}

// NoteOn retriggers the voice: resets its amplitude envelope to Attack and
// updates velocity.
func (v *Voice) NoteOn(velocity float64) {
	v.isActive = true
	v.velocity = velocity
	v.env.NoteOn()
}

// NoteOff releases the voice's amplitude envelope.
func (v *Voice) NoteOff() {
	v.env.NoteOff()
}

// IsActive reports whether the voice still has audible output.
func (v *Voice) IsActive() bool {
	return v.isActive
}

// SetWave forwards a waveform change to the oscillator.
func (v *Voice) SetWave(wave WaveKind) {
	v.osc.SetMode(wave)
}

// SetPitch forwards a pitch-bend change to the oscillator.
func (v *Voice) SetPitch(value float64) {
	v.osc.SetPitch(value)
}

// SetADSR forwards an amplitude-envelope stage update.
func (v *Voice) SetADSR(stage EnvelopeStage, value float64) {
	v.env.SetValue(stage, value)
}

// SetFilterCutoff forwards a filter cutoff-threshold update.
func (v *Voice) SetFilterCutoff(value float64) {
	v.filter.SetCutoff(value)
}

// SetFilterResonance forwards a filter resonance update.
func (v *Voice) SetFilterResonance(value float64) {
	v.filter.SetResonance(value)
}

// SetFilterADSR forwards a filter-envelope stage update.
func (v *Voice) SetFilterADSR(stage EnvelopeStage, value float64) {
	v.filterEnv.SetValue(stage, value)
}

// Next renders one sample: oscillator through the amplitude envelope and
// velocity, through the filter, with the filter envelope modulating
// cutoff.
func (v *Voice) Next() float64 {
	v.isActive = v.env.IsActive()
	v.filter.SetCutoffMod(v.filterEnv.Next() * 0.8)
	return v.filter.Process(v.osc.Next() * v.env.Next() * v.velocity)
}
