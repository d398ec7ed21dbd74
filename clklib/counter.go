// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clklib

import (
	"strconv"

	"github.com/pkg/errors"

	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// Counter returns a modulo-n up-counter part. The count advances by one
// on every enabled cycle and wraps to 0 on the cycle after tc was high.
// tc is combinational on the current count and is high for exactly one
// enabled cycle per period, when count == n-1. Reset clears the count.
//
//	Inputs: en
//	Outputs: q[w], tc // w = ceil(log2(n)), at least 1
//
// n < 1 is a configuration error. n == 1 yields a counter stuck at 0
// with tc permanently high.
func Counter(n int) (sim.NewPartFn, error) {
	if n < 1 {
		return nil, errors.Errorf("counter: modulus must be >= 1, got %d", n)
	}
	w := busWidth(n)
	spec := &sim.PartSpec{
		Name:    "CTR" + strconv.Itoa(n),
		Inputs:  []string{pEn},
		Outputs: append(sim.Bus("q", w), pTc),
		Mount: func(s *sim.Socket) []sim.Component {
			en, rst := s.Pin(pEn), s.Pin(sim.Reset)
			q, tc := s.Bus("q", w), s.Pin(pTc)
			count := 0
			return []sim.Component{{
				Comb: func(c *sim.Circuit) {
					sim.SetInt64(c, q, int64(count))
					c.Set(tc, count == n-1)
				},
				Tick: func(c *sim.Circuit) {
					switch {
					case c.Get(rst):
						count = 0
					case c.Get(en):
						if count == n-1 {
							count = 0
						} else {
							count++
						}
					}
				},
			}}
		},
	}
	return spec.NewPart, nil
}

// busWidth returns the number of bits needed to hold values 0..n-1,
// minimum 1.
func busWidth(n int) int {
	w := 1
	for 1<<uint(w) < n {
		w++
	}
	return w
}
