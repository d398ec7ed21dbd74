// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clklib

import (
	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// Reference clock and divider chain moduli. The ~100 Hz stage carries a
// +0.21% error; dividing 32768 Hz to exactly 100 Hz would need a PLL.
const (
	RefHz     = 32768
	div100Mod = 327
	div1Mod   = RefHz
	div60Mod  = 60
)

// Divider returns the clock divider chain: three counters deriving
// sub-second and per-minute timing pulses from the 32.768 kHz master
// clock.
//
//	Outputs:
//	  p100 // ~100.21 Hz, one cycle wide
//	  p1   // exactly 1 Hz, one cycle wide
//	  p60  // high throughout the 60th second of each minute
//	  min  // p60 && p1: one cycle per minute, at the minute wrap
//
// The mod-60 stage is clocked by the 1 Hz pulse, so its tc output (p60)
// is high for one tick of its own 1 Hz domain, which is a full second of
// master cycles. min narrows that to the single master cycle where both
// stages wrap together; it is the enable the timekeeper advances on.
func Divider() (sim.NewPartFn, error) {
	c100, err := Counter(div100Mod)
	if err != nil {
		return nil, err
	}
	c1, err := Counter(div1Mod)
	if err != nil {
		return nil, err
	}
	c60, err := Counter(div60Mod)
	if err != nil {
		return nil, err
	}
	return sim.Chip("DIVIDER", nil, []string{"p100", "p1", "p60", "min"}, []sim.Part{
		c100(sim.W{pEn: sim.True, pTc: "p100"}),
		c1(sim.W{pEn: sim.True, pTc: "p1"}),
		c60(sim.W{pEn: "p1", pTc: "p60"}),
		And(sim.W{pA: "p60", pB: "p1", pOut: "min"}),
	})
}
