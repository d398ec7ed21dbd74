// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clklib

import (
	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
func Not(w sim.W) sim.Part { return not.NewPart(w) }

var not = sim.PartSpec{
	Name:    "NOT",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *sim.Socket) []sim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []sim.Component{{Comb: func(c *sim.Circuit) {
			c.Set(out, !c.Get(in))
		}}}
	},
}

type gateFn func(a, b bool) bool

func newGate(name string, fn gateFn) *sim.PartSpec {
	return &sim.PartSpec{
		Name:    name,
		Inputs:  []string{pA, pB},
		Outputs: []string{pOut},
		Mount: func(s *sim.Socket) []sim.Component {
			a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
			return []sim.Component{{Comb: func(c *sim.Circuit) {
				c.Set(out, fn(c.Get(a), c.Get(b)))
			}}}
		},
	}
}

var (
	and = newGate("AND", func(a, b bool) bool { return a && b })
	or  = newGate("OR", func(a, b bool) bool { return a || b })
	xor = newGate("XOR", func(a, b bool) bool { return a != b })
)

// And returns an AND gate.
//
//	Inputs: a, b
//	Outputs: out
func And(w sim.W) sim.Part { return and.NewPart(w) }

// Or returns an OR gate.
//
//	Inputs: a, b
//	Outputs: out
func Or(w sim.W) sim.Part { return or.NewPart(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
func Xor(w sim.W) sim.Part { return xor.NewPart(w) }

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
func Mux(w sim.W) sim.Part { return mux.NewPart(w) }

var mux = sim.PartSpec{
	Name:    "MUX",
	Inputs:  []string{pA, pB, pSel},
	Outputs: []string{pOut},
	Mount: func(s *sim.Socket) []sim.Component {
		a, b, sel, out := s.Pin(pA), s.Pin(pB), s.Pin(pSel), s.Pin(pOut)
		return []sim.Component{{Comb: func(c *sim.Circuit) {
			if c.Get(sel) {
				c.Set(out, c.Get(b))
			} else {
				c.Set(out, c.Get(a))
			}
		}}}
	},
}

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
func DMux(w sim.W) sim.Part { return dmux.NewPart(w) }

var dmux = sim.PartSpec{
	Name:    "DMUX",
	Inputs:  []string{pIn, pSel},
	Outputs: []string{pA, pB},
	Mount: func(s *sim.Socket) []sim.Component {
		in, sel, a, b := s.Pin(pIn), s.Pin(pSel), s.Pin(pA), s.Pin(pB)
		return []sim.Component{{Comb: func(c *sim.Circuit) {
			if c.Get(sel) {
				c.Set(a, false)
				c.Set(b, c.Get(in))
			} else {
				c.Set(a, c.Get(in))
				c.Set(b, false)
			}
		}}}
	},
}
