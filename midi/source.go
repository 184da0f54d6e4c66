// Package midi turns raw portmidi input into polysynth events, the way
// original_source/MidiController.cpp turned raw ALSA sequencer events into
// a queue of MidiEvent.
package midi

import (
	"github.com/pkg/errors"
	"github.com/rakyll/portmidi"

	"github.com/gosynth/polysynth"
)

// Source reads a portmidi input stream on its own goroutine and pushes
// translated events onto a polysynth.EventQueue.
type Source struct {
	stream *portmidi.Stream
	queue  *polysynth.EventQueue
	done   chan struct{}
}

// Open starts listening on the given portmidi device and begins pushing
// events onto queue. Mirrors whyrusleeping-synth/midi.go's OpenController.
func Open(id portmidi.DeviceID, queue *polysynth.EventQueue) (*Source, error) {
	stream, err := portmidi.NewInputStream(id, 1024)
	if err != nil {
		return nil, errors.Wrap(err, "midi: opening input stream")
	}

	s := &Source{
		stream: stream,
		queue:  queue,
		done:   make(chan struct{}),
	}
	go s.run()
	return s, nil
}

// Close stops the listening goroutine and releases the underlying stream.
func (s *Source) Close() error {
	close(s.done)
	return s.stream.Close()
}

func (s *Source) run() {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		events, err := s.stream.Read(1024)
		if err != nil {
			continue
		}

		for _, event := range events {
			if ev, ok := translate(event); ok {
				s.queue.Push(ev)
			}
		}
	}
}

// translate maps a raw portmidi event onto a polysynth.Event, following
// original_source/MidiController.cpp's status-byte switch: 0x90 note on
// (only when velocity is nonzero; a zero-velocity note-on is dropped,
// not treated as note off, matching the original exactly), 0x80 note
// off, 0xE0 pitch bend (14-bit value centered at 8192), 0xB0 control
// change. Anything else is unhandled.
func translate(event portmidi.Event) (polysynth.Event, bool) {
	status := event.Status & 0xF0

	switch status {
	case 0x90:
		velocity := float64(event.Data2) / 127.0
		if velocity <= 0 {
			return polysynth.Event{}, false
		}
		return polysynth.NoteOnEvent(int(event.Data1), velocity), true

	case 0x80:
		return polysynth.NoteOffEvent(int(event.Data1)), true

	case 0xE0:
		raw := int64(event.Data1) | (int64(event.Data2) << 7)
		pitch := (float64(raw) - 8192.0) / 8192.0
		return polysynth.PitchBendEvent(pitch), true

	case 0xB0:
		return polysynth.ControlEvent(int(event.Data1), float64(event.Data2)/127.0), true

	default:
		return polysynth.Event{}, false
	}
}
