package polysynth

import "math"

// WaveKind selects the oscillator's waveform.
type WaveKind int

const (
	WaveSine WaveKind = iota
	WaveSaw
	WaveSquare
	WaveTriangle
)

// Oscillator produces one band-limited (PolyBLEP) waveform sample per call
// to Next. Unlike the C++ original it does not treat sample rate as
// process-wide static state: each Oscillator holds its own rate.
type Oscillator struct {
	mode WaveKind
	rate float64

	freq  float64
	pitch float64

	phase          float64
	phaseIncrement float64
	muted          bool
	lastOut        float64 // leaky integrator history for triangle
}

// NewOscillator creates an Oscillator at the given sample rate, defaulting
// to a 440Hz sine, matching the teacher's SineWave-as-default voices.
func NewOscillator(rate float64) *Oscillator {
	o := &Oscillator{
		mode: WaveSine,
		rate: rate,
		freq: 440.0,
	}
	o.setIncrement()
	return o
}

// SetMode changes the waveform.
func (o *Oscillator) SetMode(mode WaveKind) {
	o.mode = mode
}

// SetFreq sets the base frequency in Hz and recomputes phase increment.
func (o *Oscillator) SetFreq(freq float64) {
	o.freq = freq
	o.setIncrement()
}

// SetRate changes the sample rate and recomputes phase increment.
func (o *Oscillator) SetRate(rate float64) {
	o.rate = rate
	o.setIncrement()
}

// SetPitch sets pitch modulation in [-1,1] and recomputes phase increment.
func (o *Oscillator) SetPitch(pitch float64) {
	o.pitch = pitch
	o.setIncrement()
}

// Mute silences the oscillator. A muted oscillator does not advance phase.
func (o *Oscillator) Mute() {
	o.muted = true
}

// Unmute re-enables sample production.
func (o *Oscillator) Unmute() {
	o.muted = false
}

func (o *Oscillator) setIncrement() {
	pitchAsFreq := math.Pow(2.0, math.Abs(o.pitch)*14.0) - 1
	if o.pitch < 0 {
		pitchAsFreq = -pitchAsFreq
	}
	freq := clamp(o.freq+pitchAsFreq, 0, o.rate/2.0)
	o.phaseIncrement = freq * twoPi / o.rate
}

// polyBlep approximates the sinc function with a triangle near a
// discontinuity. t is phase/2π, and dt is the current phase increment/2π.
func (o *Oscillator) polyBlep(t float64) float64 {
	dt := o.phaseIncrement / twoPi
	switch {
	case t < dt:
		t /= dt
		return t + t - t*t - 1.0
	case t > 1.0-dt:
		t = (t - 1.0) / dt
		return t*t + t + t + 1.0
	default:
		return 0.0
	}
}

func (o *Oscillator) naiveWave() float64 {
	switch o.mode {
	case WaveSine:
		return math.Sin(o.phase)
	case WaveSaw:
		return (2.0*o.phase)/twoPi - 1.0
	case WaveSquare:
		if o.phase < math.Pi {
			return 1.0
		}
		return -1.0
	case WaveTriangle:
		v := -1.0 + (2.0*o.phase)/twoPi
		return 2.0 * (math.Abs(v) - 0.5)
	default:
		return 0.0
	}
}

// Next returns the oscillator's next sample, approximately in [-1,1], and
// advances phase (wrapping to [0, 2π)) unless muted.
func (o *Oscillator) Next() float64 {
	if o.muted {
		return 0.0
	}

	t := o.phase / twoPi
	var value float64

	switch o.mode {
	case WaveSine:
		value = o.naiveWave()
	case WaveSaw:
		value = o.naiveWave() - o.polyBlep(t)
	default: // square, triangle (the triangle integrates the band-limited square)
		value = 1.0
		if o.phase >= math.Pi {
			value = -1.0
		}
		value += o.polyBlep(t)
		value -= o.polyBlep(math.Mod(t+0.5, 1.0))
		if o.mode == WaveTriangle {
			value = o.phaseIncrement*value + (1-o.phaseIncrement)*o.lastOut
			o.lastOut = value
		}
	}

	o.phase += o.phaseIncrement
	for o.phase >= twoPi {
		o.phase -= twoPi
	}
	return value
}
