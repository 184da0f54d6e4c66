// Package analysis provides offline signal-inspection helpers used by
// tests and the visualizer: magnitude spectra and zero-crossing counts.
// Grounded on whyrusleeping-synth/draw.go's fft.FFTReal + magnitude
// spectrum computation.
package analysis

import (
	"math/cmplx"

	"github.com/maddyblue/go-dsp/fft"
)

// MagnitudeSpectrum returns the magnitude of each positive-frequency bin
// of samples' real FFT, normalized by the input length.
func MagnitudeSpectrum(samples []float64) []float64 {
	result := fft.FFTReal(samples)
	mags := make([]float64, len(result)/2+1)
	for i, c := range result[:len(mags)] {
		mags[i] = cmplx.Abs(c) / float64(len(samples))
	}
	return mags
}

// ZeroCrossings counts the number of sign changes in samples, a cheap
// proxy for a waveform's fundamental frequency.
func ZeroCrossings(samples []float64) int {
	var crossings int
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			crossings++
		}
	}
	return crossings
}

// DominantBin returns the index of the largest-magnitude bin in a
// spectrum produced by MagnitudeSpectrum, skipping the DC bin.
func DominantBin(spectrum []float64) int {
	best := 1
	for i := 2; i < len(spectrum); i++ {
		if spectrum[i] > spectrum[best] {
			best = i
		}
	}
	return best
}
