// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

// Package clktest provides utility functions for testing circuits.
package clktest

import (
	"testing"

	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// A Harness wraps a single part in a circuit of its own, driving every
// input pin from a settable level and probing every output pin.
type Harness struct {
	t   *testing.T
	c   *sim.Circuit
	in  map[string]*bool
	out map[string]*bool
}

// New builds a harness around the given part.
func New(t *testing.T, part sim.NewPartFn) *Harness {
	t.Helper()

	h := &Harness{
		t:   t,
		in:  make(map[string]*bool),
		out: make(map[string]*bool),
	}

	spec := part(nil)
	w := make(sim.W, len(spec.Inputs)+len(spec.Outputs))
	parts := make([]sim.Part, 0, len(spec.Inputs)+len(spec.Outputs)+1)
	for _, n := range spec.Inputs {
		w[n] = n
		v := new(bool)
		h.in[n] = v
		parts = append(parts, sim.Input(func() bool { return *v })(sim.W{"out": n}))
	}
	for _, n := range spec.Outputs {
		w[n] = n
		v := new(bool)
		h.out[n] = v
		parts = append(parts, sim.Output(func(b bool) { *v = b })(sim.W{"in": n}))
	}
	parts = append(parts, part(w))

	c, err := sim.NewCircuit(parts...)
	if err != nil {
		t.Fatal(err)
	}
	h.c = c
	return h
}

// Set sets the level of the named input pin for subsequent cycles.
func (h *Harness) Set(name string, v bool) {
	p, ok := h.in[name]
	if !ok {
		h.t.Fatalf("no input pin %q", name)
	}
	*p = v
}

// SetBus sets the levels of an input bus to the bits of v.
func (h *Harness) SetBus(name string, bits, v int) {
	for i := 0; i < bits; i++ {
		h.Set(sim.BusPinName(name, i), v&(1<<uint(i)) != 0)
	}
}

// Out returns the settled state of the named output pin.
func (h *Harness) Out(name string) bool {
	p, ok := h.out[name]
	if !ok {
		h.t.Fatalf("no output pin %q", name)
	}
	return *p
}

// OutBus returns the settled state of an output bus as an int.
func (h *Harness) OutBus(name string, bits int) int {
	var v int
	for i := 0; i < bits; i++ {
		if h.Out(sim.BusPinName(name, i)) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Step advances the circuit by one master-clock cycle.
func (h *Harness) Step() { h.c.Step() }

// StepN advances the circuit by n master-clock cycles.
func (h *Harness) StepN(n int) { h.c.StepN(n) }

// Reset drives the global reset line.
func (h *Harness) Reset(assert bool) { h.c.Reset(assert) }

// Pulse holds the named input high for one cycle.
func (h *Harness) Pulse(name string) {
	h.Set(name, true)
	h.Step()
	h.Set(name, false)
}

// SetTime drives the four BCD digit buses of a time input group whose
// bus names share the given prefix, e.g. prefix "t" drives th10, th1,
// tm10 and tm1.
func (h *Harness) SetTime(prefix string, hour, minute int) {
	h.SetBus(prefix+"h10", 2, hour/10)
	h.SetBus(prefix+"h1", 4, hour%10)
	h.SetBus(prefix+"m10", 3, minute/10)
	h.SetBus(prefix+"m1", 4, minute%10)
}

// Time reads the four BCD digit buses of a time output group whose bus
// names share the given prefix and returns them as "HH:MM".
func (h *Harness) Time(prefix string) string {
	return string([]byte{
		byte('0' + h.OutBus(prefix+"h10", 2)),
		byte('0' + h.OutBus(prefix+"h1", 4)),
		':',
		byte('0' + h.OutBus(prefix+"m10", 3)),
		byte('0' + h.OutBus(prefix+"m1", 4)),
	})
}
