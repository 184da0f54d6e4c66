// Command polysynth wires a MIDI input, the synth engine, a PCM output,
// and a REPL together, the way whyrusleeping-synth/main.go's main() wires
// portmidi+beep/speaker and system.go drives a command REPL.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/c-bata/go-prompt"
	"github.com/pkg/errors"
	"github.com/rakyll/portmidi"

	"github.com/gosynth/polysynth"
	"github.com/gosynth/polysynth/midi"
	"github.com/gosynth/polysynth/pcm"
	"github.com/gosynth/polysynth/visual"
)

const sampleRate = 44100

func main() {
	rate := flag.Int("rate", sampleRate, "sample rate in Hz")
	verbose := flag.Bool("v", false, "log voice allocation/eviction")
	visualize := flag.Bool("visual", false, "open an SDL waveform/spectrum window")
	midiDevice := flag.Int("midi-device", -1, "portmidi device id (-1 for default input)")
	flag.Parse()

	polysynth.Verbose = *verbose

	if err := run(*rate, *midiDevice, *visualize); err != nil {
		fmt.Fprintln(os.Stderr, "polysynth:", err)
		os.Exit(1)
	}
}

func run(rate, midiDeviceID int, visualize bool) error {
	synth := polysynth.NewSynth(float64(rate))

	sink, err := pcm.Open(rate, 1024)
	if err != nil {
		return errors.Wrap(err, "opening audio output")
	}
	synth.Start(sink)
	defer synth.Stop()

	if err := portmidi.Initialize(); err != nil {
		return errors.Wrap(err, "initializing midi")
	}
	defer portmidi.Terminate()

	deviceID := portmidi.DeviceID(midiDeviceID)
	if midiDeviceID < 0 {
		deviceID = portmidi.DefaultInputDeviceID()
	}
	source, err := midi.Open(deviceID, synth.Queue())
	if err != nil {
		return errors.Wrap(err, "opening midi input")
	}
	defer source.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	if visualize {
		win, err := visual.Open(synth)
		if err != nil {
			return errors.Wrap(err, "opening visualizer")
		}
		defer win.Close()
		synth.SetTap(win.PushSample)
		go win.Run()
	}

	go repl(synth)

	<-sig
	return nil
}

// repl runs a tiny command prompt for manual control during development,
// grounded on whyrusleeping-synth/system.go's ProcessCmd dispatch loop.
// Commands: "note on <n> <vel>", "note off <n>", "wave <sine|saw|square|triangle>",
// "attack|decay|sustain|release <v>", "cutoff|resonance <v>", "volume <v>", "quit".
func repl(synth *polysynth.Synth) {
	completer := func(d prompt.Document) []prompt.Suggest {
		return nil
	}

	for {
		line := prompt.Input("polysynth> ", completer)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if err := dispatch(synth, fields); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func dispatch(synth *polysynth.Synth, fields []string) error {
	switch fields[0] {
	case "quit", "exit":
		os.Exit(0)

	case "note":
		if len(fields) < 3 {
			return errors.New("usage: note <on|off> <note> [velocity]")
		}
		note, err := strconv.Atoi(fields[2])
		if err != nil {
			return errors.Wrap(err, "parsing note")
		}
		switch fields[1] {
		case "on":
			velocity := 1.0
			if len(fields) > 3 {
				v, err := strconv.ParseFloat(fields[3], 64)
				if err != nil {
					return errors.Wrap(err, "parsing velocity")
				}
				velocity = v
			}
			synth.NoteOn(note, velocity)
		case "off":
			synth.NoteOff(note)
		default:
			return errors.Errorf("unknown note command: %s", fields[1])
		}

	case "wave":
		if len(fields) < 2 {
			return errors.New("usage: wave <sine|saw|square|triangle>")
		}
		wave, err := parseWave(fields[1])
		if err != nil {
			return err
		}
		synth.SetWaveform(wave)

	case "attack", "decay", "sustain", "release",
		"filter-attack", "filter-decay", "filter-sustain", "filter-release",
		"cutoff", "resonance", "volume", "pitch":
		if len(fields) < 2 {
			return errors.Errorf("usage: %s <value>", fields[0])
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return errors.Wrap(err, "parsing value")
		}
		applyParam(synth, fields[0], v)

	default:
		return errors.Errorf("unknown command: %s", fields[0])
	}
	return nil
}

func applyParam(synth *polysynth.Synth, name string, v float64) {
	switch name {
	case "attack":
		synth.SetAttack(v)
	case "decay":
		synth.SetDecay(v)
	case "sustain":
		synth.SetSustain(v)
	case "release":
		synth.SetRelease(v)
	case "filter-attack":
		synth.SetFilterAttack(v)
	case "filter-decay":
		synth.SetFilterDecay(v)
	case "filter-sustain":
		synth.SetFilterSustain(v)
	case "filter-release":
		synth.SetFilterRelease(v)
	case "cutoff":
		synth.SetCutoff(v)
	case "resonance":
		synth.SetResonance(v)
	case "volume":
		synth.SetVolume(v)
	case "pitch":
		synth.SetPitch(v)
	}
}

func parseWave(name string) (polysynth.WaveKind, error) {
	switch name {
	case "sine":
		return polysynth.WaveSine, nil
	case "saw":
		return polysynth.WaveSaw, nil
	case "square":
		return polysynth.WaveSquare, nil
	case "triangle":
		return polysynth.WaveTriangle, nil
	default:
		return 0, errors.Errorf("unknown waveform: %s", name)
	}
}
