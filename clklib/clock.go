// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clklib

import (
	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// AlarmClock returns the assembled clock core with the external pin
// boundary of the chip: raw button levels and the display source select
// in, segment, anode and alarm lines out. Physical pin packing and the
// pad ring are not modeled.
//
//	Inputs:
//	  hrs  // hour increment button
//	  mins // minute increment button
//	  set  // alarm-set button: while held, increments edit the alarm time
//	  arm  // alarm on/off toggle button
//	  dim  // brightness toggle button
//	  sel  // display source: live time (0) or alarm time (1)
//	Outputs: seg[7], an[4], alarm
//
// Every button passes through a debounce filter of the given sample
// depth; the increment, arm and dim actions fire on the rising edge of
// the debounced level, so holding a button acts once. The alarm state
// machine samples the debounced levels of all five buttons as its
// any-button input.
func AlarmClock(debounce int) (sim.NewPartFn, error) {
	div, err := Divider()
	if err != nil {
		return nil, err
	}
	deb, err := Debounce(debounce)
	if err != nil {
		return nil, err
	}
	live, err := TimeKeeper()
	if err != nil {
		return nil, err
	}
	alarmTk, err := TimeKeeper()
	if err != nil {
		return nil, err
	}

	tw := sim.W{"tick": "mtick", "incm": "mlive", "inch": "hlive"}.
		WireBus("h10", "th10", 2).WireBus("h1", "th1", 4).
		WireBus("m10", "tm10", 3).WireBus("m1", "tm1", 4)
	aw := sim.W{"tick": sim.False, "incm": "mset", "inch": "hset"}.
		WireBus("h10", "sh10", 2).WireBus("h1", "sh1", 4).
		WireBus("m10", "sm10", 3).WireBus("m1", "sm1", 4)
	fw := sim.W{"arm": "armed", "btn": "anybtn", "alarm": "alarm"}.
		WireBus("th10", "th10", 2).WireBus("th1", "th1", 4).
		WireBus("tm10", "tm10", 3).WireBus("tm1", "tm1", 4).
		WireBus("ah10", "sh10", 2).WireBus("ah1", "sh1", 4).
		WireBus("am10", "sm10", 3).WireBus("am1", "sm1", 4)
	dw := sim.W{pSel: "sel", "dim": "edim"}.
		WireBus("ah10", "th10", 2).WireBus("ah1", "th1", 4).
		WireBus("am10", "tm10", 3).WireBus("am1", "tm1", 4).
		WireBus("bh10", "sh10", 2).WireBus("bh1", "sh1", 4).
		WireBus("bm10", "sm10", 3).WireBus("bm1", "sm1", 4).
		WireBus("seg", "seg", 7).WireBus("an", "an", 4)

	inputs := []string{"hrs", "mins", "set", "arm", "dim", "sel"}
	outputs := append(sim.Bus("seg", 7), sim.Bus("an", 4)...)
	outputs = append(outputs, "alarm")

	return sim.Chip("ALARMCLOCK", inputs, outputs, []sim.Part{
		div(sim.W{"min": "mtick"}),

		deb(sim.W{pIn: "hrs", pEn: sim.True, pOut: "dhrs"}),
		deb(sim.W{pIn: "mins", pEn: sim.True, pOut: "dmins"}),
		deb(sim.W{pIn: "set", pEn: sim.True, pOut: "dset"}),
		deb(sim.W{pIn: "arm", pEn: sim.True, pOut: "darm"}),
		deb(sim.W{pIn: "dim", pEn: sim.True, pOut: "ddim"}),

		Edge(sim.W{pIn: "dhrs", pOut: "ehrs"}),
		Edge(sim.W{pIn: "dmins", pOut: "emins"}),
		Edge(sim.W{pIn: "darm", pOut: "earm"}),
		Edge(sim.W{pIn: "ddim", pOut: "edim"}),

		TFF(sim.W{pEn: "earm", pOut: "armed"}),

		// while the set button is held, increments edit the alarm time
		DMux(sim.W{pIn: "ehrs", pSel: "dset", pA: "hlive", pB: "hset"}),
		DMux(sim.W{pIn: "emins", pSel: "dset", pA: "mlive", pB: "mset"}),

		live(tw),
		alarmTk(aw),

		Or(sim.W{pA: "dhrs", pB: "dmins", pOut: "btn01"}),
		Or(sim.W{pA: "btn01", pB: "dset", pOut: "btn02"}),
		Or(sim.W{pA: "btn02", pB: "darm", pOut: "btn03"}),
		Or(sim.W{pA: "btn03", pB: "ddim", pOut: "anybtn"}),

		AlarmFSM(fw),
		Display(dw),
	})
}
