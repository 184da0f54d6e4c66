package analysis

import (
	"math"
	"testing"
)

func TestZeroCrossingsCountsSignChanges(t *testing.T) {
	samples := []float64{1, -1, 1, -1, 1, -1}
	if got := ZeroCrossings(samples); got != 5 {
		t.Fatalf("expected 5 crossings, got %d", got)
	}
}

func TestZeroCrossingsConstantSignal(t *testing.T) {
	samples := []float64{1, 1, 1, 1}
	if got := ZeroCrossings(samples); got != 0 {
		t.Fatalf("expected 0 crossings for constant signal, got %d", got)
	}
}

func TestMagnitudeSpectrumFindsDominantFrequency(t *testing.T) {
	const n = 1024
	const rate = 1024.0
	const freq = 64.0

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
	}

	spectrum := MagnitudeSpectrum(samples)
	bin := DominantBin(spectrum)

	// With rate==n, bin index equals frequency in Hz.
	if bin != int(freq) {
		t.Fatalf("expected dominant bin near %v, got %v", freq, bin)
	}
}
