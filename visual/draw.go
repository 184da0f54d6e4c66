// Package visual is an SDL2 oscilloscope/spectrum window plus a
// QWERTY-as-keyboard note input, grounded on
// whyrusleeping-synth/draw.go's window/renderer/graphData loop and its
// sdl.KeyboardEvent-to-note mapping.
package visual

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gosynth/polysynth"
	"github.com/gosynth/polysynth/analysis"
)

const (
	screenWidth  = 1000
	screenHeight = 600
)

var keyNotes = map[sdl.Keycode]int{
	sdl.K_a: 60, sdl.K_s: 62, sdl.K_d: 64, sdl.K_f: 65,
	sdl.K_g: 67, sdl.K_h: 69, sdl.K_j: 71, sdl.K_k: 72, sdl.K_l: 74,
}

// Window owns an SDL window/renderer pair and a ring buffer of recently
// rendered samples fed to it by the caller for visualization.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	synth *polysynth.Synth

	buf      []float64
	dataMu   chan struct{} // acts as a 1-slot mutex; simple guard for buf
	writePos int
}

// Open creates the SDL window and renderer.
func Open(synth *polysynth.Synth) (*Window, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("visual: sdl.Init: %w", err)
	}

	window, err := sdl.CreateWindow("polysynth", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		screenWidth, screenHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("visual: creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("visual: creating renderer: %w", err)
	}

	return &Window{
		window:   window,
		renderer: renderer,
		synth:    synth,
		buf:      make([]float64, 2000),
		dataMu:   make(chan struct{}, 1),
	}, nil
}

// Close tears down SDL resources.
func (w *Window) Close() {
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

// PushSample records one rendered output sample into the visualizer's
// ring buffer. Safe to call from the render goroutine.
func (w *Window) PushSample(v float64) {
	w.dataMu <- struct{}{}
	w.buf[w.writePos%len(w.buf)] = v
	w.writePos++
	<-w.dataMu
}

// snapshot copies the current ring buffer contents in playback order.
func (w *Window) snapshot() []float64 {
	w.dataMu <- struct{}{}
	defer func() { <-w.dataMu }()

	out := make([]float64, len(w.buf))
	for i := range out {
		out[i] = w.buf[(w.writePos+i)%len(w.buf)]
	}
	return out
}

// Run pumps the SDL event loop, dispatching keyboard note on/off to
// synth and redrawing the waveform and spectrum each frame, until a
// QuitEvent is received.
func (w *Window) Run() {
	keystates := make(map[sdl.Keycode]bool)

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				note, known := keyNotes[event.Keysym.Sym]
				if !known {
					continue
				}
				switch event.Type {
				case sdl.KEYDOWN:
					if !keystates[event.Keysym.Sym] {
						keystates[event.Keysym.Sym] = true
						w.synth.NoteOn(note, 1.0)
					}
				case sdl.KEYUP:
					keystates[event.Keysym.Sym] = false
					w.synth.NoteOff(note)
				}
			}
		}

		data := w.snapshot()
		spectrum := analysis.MagnitudeSpectrum(data)

		w.renderer.SetDrawColor(255, 255, 255, 255)
		w.renderer.Clear()
		graphData(w.renderer, data[:500], 50, 50, 600, 200, -1, 1)
		graphData(w.renderer, spectrum[:min(100, len(spectrum))], 50, 300, 600, 200, 0, 0.5)
		w.renderer.Present()
	}
}

// graphData draws dataPoints as a connected line inside the rectangle
// (x,y,width,height), mapping [minval,maxval] to the rectangle's height.
func graphData(renderer *sdl.Renderer, dataPoints []float64, x, y, width, height int32, minval, maxval float64) {
	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.DrawLine(x, y+height/2, x+width, y+height/2)
	renderer.DrawLine(x, y, x, y+height)

	spread := maxval - minval
	renderer.SetDrawColor(255, 0, 0, 255)
	for i := 0; i < len(dataPoints)-1; i++ {
		x1 := x + int32(float64(i)*float64(width)/float64(len(dataPoints)-1))
		y1 := y + height - int32((dataPoints[i]-minval)/spread*float64(height))
		x2 := x + int32(float64(i+1)*float64(width)/float64(len(dataPoints)-1))
		y2 := y + height - int32((dataPoints[i+1]-minval)/spread*float64(height))
		renderer.DrawLine(x1, y1, x2, y2)
	}
}
