// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clklib

import (
	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// DFF returns a clocked data flip-flop.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle
func DFF(w sim.W) sim.Part { return dff.NewPart(w) }

var dff = sim.PartSpec{
	Name:    "DFF",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *sim.Socket) []sim.Component {
		in, out, rst := s.Pin(pIn), s.Pin(pOut), s.Pin(sim.Reset)
		var q bool
		return []sim.Component{{
			Comb: func(c *sim.Circuit) { c.Set(out, q) },
			Tick: func(c *sim.Circuit) {
				if c.Get(rst) {
					q = false
					return
				}
				q = c.Get(in)
			},
		}}
	},
}

// Edge returns a rising-edge detector: out is high for exactly one cycle
// when in goes low to high. Button pulses derived through Edge increment
// a counter once per press no matter how long the button is held.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t) && !in(t-1)
func Edge(w sim.W) sim.Part { return edge.NewPart(w) }

var edge = sim.PartSpec{
	Name:    "EDGE",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *sim.Socket) []sim.Component {
		in, out, rst := s.Pin(pIn), s.Pin(pOut), s.Pin(sim.Reset)
		var prev bool
		return []sim.Component{{
			Comb: func(c *sim.Circuit) { c.Set(out, c.Get(in) && !prev) },
			Tick: func(c *sim.Circuit) {
				if c.Get(rst) {
					prev = false
					return
				}
				prev = c.Get(in)
			},
		}}
	},
}

// TFF returns a toggle flip-flop: the stored bit flips on every enabled
// cycle. Drives the alarm armed/disarmed latch.
//
//	Inputs: en
//	Outputs: out
func TFF(w sim.W) sim.Part { return tff.NewPart(w) }

var tff = sim.PartSpec{
	Name:    "TFF",
	Inputs:  []string{pEn},
	Outputs: []string{pOut},
	Mount: func(s *sim.Socket) []sim.Component {
		en, out, rst := s.Pin(pEn), s.Pin(pOut), s.Pin(sim.Reset)
		var q bool
		return []sim.Component{{
			Comb: func(c *sim.Circuit) { c.Set(out, q) },
			Tick: func(c *sim.Circuit) {
				switch {
				case c.Get(rst):
					q = false
				case c.Get(en):
					q = !q
				}
			},
		}}
	},
}
