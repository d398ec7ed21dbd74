// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"

	"github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock/clklib"
)

// tone parameters for the rendered alarm sound. The alarm pin itself is
// a level; a real board would feed it to a buzzer. Toggling every 32
// master cycles gives a 512 Hz square wave at the 32768 Hz sample rate.
const (
	toneHalfPeriod = 32
	toneHigh       = 224
	toneLow        = 32
	toneSilence    = 128
)

// toneWriter records the alarm line as 8-bit mono audio, one sample per
// master-clock cycle. Samples are buffered in memory and written out on
// Close.
type toneWriter struct {
	path  string
	data  []int
	phase int
	level bool
}

func newToneWriter(path string) *toneWriter {
	return &toneWriter{path: path}
}

// Sample appends one master-clock cycle of audio.
func (w *toneWriter) Sample(alarm bool) {
	v := toneSilence
	if alarm {
		w.phase++
		if w.phase >= toneHalfPeriod {
			w.phase = 0
			w.level = !w.level
		}
		if w.level {
			v = toneHigh
		} else {
			v = toneLow
		}
	} else {
		w.phase, w.level = 0, false
	}
	w.data = append(w.data, v)
}

// Close writes the buffered samples to the wav file.
func (w *toneWriter) Close() (rerr error) {
	f, err := os.Create(w.path)
	if err != nil {
		return errors.Wrap(err, "wav")
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = errors.Wrap(err, "wav")
		}
	}()

	enc := wav.NewEncoder(f, clklib.RefHz, 8, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: clklib.RefHz},
		Data:           w.data,
		SourceBitDepth: 8,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "wav")
	}
	return errors.Wrap(enc.Close(), "wav")
}
