// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clklib

import (
	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// Hours returns the hour pair of a 24-hour BCD clock. The rollover is
// irregular, so this is a custom part rather than a plain modulo
// counter: ones counts 0-9 with carry into tens, except that 23 is the
// terminal state and wraps the pair to 00.
//
//	Inputs: en
//	Outputs: h10[2], h1[4]
func Hours(w sim.W) sim.Part { return hours.NewPart(w) }

var hours = sim.PartSpec{
	Name:    "HOURS",
	Inputs:  []string{pEn},
	Outputs: append(sim.Bus("h10", 2), sim.Bus("h1", 4)...),
	Mount: func(s *sim.Socket) []sim.Component {
		en, rst := s.Pin(pEn), s.Pin(sim.Reset)
		h10, h1 := s.Bus("h10", 2), s.Bus("h1", 4)
		var tens, ones int
		return []sim.Component{{
			Comb: func(c *sim.Circuit) {
				sim.SetInt64(c, h10, int64(tens))
				sim.SetInt64(c, h1, int64(ones))
			},
			Tick: func(c *sim.Circuit) {
				switch {
				case c.Get(rst):
					tens, ones = 0, 0
				case c.Get(en):
					switch {
					case tens == 2 && ones == 3:
						tens, ones = 0, 0
					case ones == 9:
						tens, ones = tens+1, 0
					default:
						ones++
					}
				}
			},
		}}
	},
}

// TimeKeeper returns a 24-hour BCD time counter chip. Minutes are two
// coupled modulo counters (ones mod 10, tens mod 6, the tens stage
// enabled only while the ones stage sits at terminal count); the carry
// out of both feeds the hour pair.
//
//	Inputs:
//	  tick // per-minute advance pulse; ground it for an alarm-time instance
//	  incm // manual minute increment pulse (debounced edge, one cycle)
//	  inch // manual hour increment pulse (debounced edge, one cycle)
//	Outputs: h10[2], h1[4], m10[3], m1[4]
//
// A minute wrap carries into the hours whether it was reached by the
// automatic tick or by a manual minute increment.
func TimeKeeper() (sim.NewPartFn, error) {
	m1, err := Counter(10)
	if err != nil {
		return nil, err
	}
	m10, err := Counter(6)
	if err != nil {
		return nil, err
	}
	outputs := append(sim.Bus("h10", 2), sim.Bus("h1", 4)...)
	outputs = append(outputs, sim.Bus("m10", 3)...)
	outputs = append(outputs, sim.Bus("m1", 4)...)
	return sim.Chip("TIMEKEEPER", []string{"tick", "incm", "inch"}, outputs, []sim.Part{
		Or(sim.W{pA: "tick", pB: "incm", pOut: "madv"}),
		m1(sim.W{pEn: "madv", pTc: "m1tc"}.WireBus("q", "m1", 4)),
		And(sim.W{pA: "madv", pB: "m1tc", pOut: "m10adv"}),
		m10(sim.W{pEn: "m10adv", pTc: "m10tc"}.WireBus("q", "m10", 3)),
		And(sim.W{pA: "m10adv", pB: "m10tc", pOut: "mcarry"}),
		Or(sim.W{pA: "mcarry", pB: "inch", pOut: "hadv"}),
		Hours(sim.W{pEn: "hadv"}.WireBus("h10", "h10", 2).WireBus("h1", "h1", 4)),
	})
}
