package polysynth

import (
	"sync"
	"testing"
	"time"
)

type fakeSink struct {
	mu     sync.Mutex
	blocks int
}

func (s *fakeSink) Play(samples []int16) {
	s.mu.Lock()
	s.blocks++
	s.mu.Unlock()
}

func (s *fakeSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blocks
}

func TestRenderEngineStopJoinsGoroutine(t *testing.T) {
	poly := newTestPolyphonic()
	queue := NewEventQueue()
	engine := NewRenderEngine(poly, queue)
	sink := &fakeSink{}

	engine.Start(sink)
	time.Sleep(5 * time.Millisecond)
	engine.Stop()

	if sink.count() == 0 {
		t.Fatalf("expected at least one rendered block before stop")
	}
}

func TestRenderEngineDispatchesNoteOn(t *testing.T) {
	poly := newTestPolyphonic()
	queue := NewEventQueue()
	engine := NewRenderEngine(poly, queue)

	queue.Push(NoteOnEvent(60, 1.0))
	engine.dispatch(queue.Pop())

	if !poly.NoteActive(60) {
		t.Fatalf("NoteOn event was not applied to polyphonic")
	}
}

func TestRenderEngineDispatchesControlToFilterCutoff(t *testing.T) {
	poly := newTestPolyphonic()
	queue := NewEventQueue()
	engine := NewRenderEngine(poly, queue)

	engine.dispatch(ControlEvent(5, 0.42))
	if poly.filterCutoff != 0.42 {
		t.Fatalf("control id 5 did not set filter cutoff: %v", poly.filterCutoff)
	}
}

func TestRenderEngineDispatchesFilterADSRStages(t *testing.T) {
	poly := newTestPolyphonic()
	queue := NewEventQueue()
	engine := NewRenderEngine(poly, queue)

	engine.dispatch(ControlEvent(7, 0.33))
	if poly.filterADSR[StageAttack] != 0.33 {
		t.Fatalf("control id 7 did not set filter attack: %v", poly.filterADSR[StageAttack])
	}
}

func TestClipSaturatesAtInt16Bounds(t *testing.T) {
	if clip(2.0) != 32767 {
		t.Fatalf("clip did not saturate positive overflow: %v", clip(2.0))
	}
	if clip(-2.0) != -32767 {
		t.Fatalf("clip did not saturate negative overflow: %v", clip(-2.0))
	}
}
