// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clklib

import (
	"strconv"

	"github.com/pkg/errors"

	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// DebounceDepth is the sample depth used for the clock's buttons.
const DebounceDepth = 8

// Debounce returns an n-sample debounce filter. Each enabled cycle the
// raw input is shifted into an n-bit register; out is the AND of all n
// stored samples, so it asserts only after n consecutive high samples
// and a single low sample restarts the count. The register holds while
// en is low. Reset clears all samples, forcing out low immediately.
//
//	Inputs: in, en
//	Outputs: out
//
// n must be in [1,64]; anything else is a configuration error.
func Debounce(n int) (sim.NewPartFn, error) {
	if n < 1 || n > 64 {
		return nil, errors.Errorf("debounce: sample depth must be in [1,64], got %d", n)
	}
	mask := uint64(1)<<uint(n) - 1
	spec := &sim.PartSpec{
		Name:    "DEB" + strconv.Itoa(n),
		Inputs:  []string{pIn, pEn},
		Outputs: []string{pOut},
		Mount: func(s *sim.Socket) []sim.Component {
			in, en, rst := s.Pin(pIn), s.Pin(pEn), s.Pin(sim.Reset)
			out := s.Pin(pOut)
			var samples uint64
			return []sim.Component{{
				Comb: func(c *sim.Circuit) {
					c.Set(out, samples == mask)
				},
				Tick: func(c *sim.Circuit) {
					switch {
					case c.Get(rst):
						samples = 0
					case c.Get(en):
						samples <<= 1
						if c.Get(in) {
							samples |= 1
						}
						samples &= mask
					}
				},
			}}
		},
	}
	return spec.NewPart, nil
}
