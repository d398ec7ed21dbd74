// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Constant wire names. Every socket has them pre-wired: False and True
// carry fixed levels, Reset is the global reset line driven by
// Circuit.Reset. Reset is active-high inside the model; the active-low
// polarity of the physical reset pad belongs to the pad ring, not here.
const (
	False = "false"
	True  = "true"
	Reset = "reset"
)

const (
	cstFalse = iota
	cstTrue
	cstReset
	cstCount
)

// A Component is a part instance mounted in a circuit. Comb drives the
// part's combinational outputs as a pure function of input pins and
// internal register state; it may run several times per Step while the
// circuit settles. Tick commits register updates at the rising clock edge
// and must not drive pins. Either function may be nil.
type Component struct {
	Comb func(c *Circuit)
	Tick func(c *Circuit)
}

// A MountFn mounts a part into socket s. It queries the socket for
// assigned pin numbers and returns components closed over those numbers.
//
// A two-input AND gate looks like this:
//
//	and := &PartSpec{
//		Name:    "AND",
//		Inputs:  []string{"a", "b"},
//		Outputs: []string{"out"},
//		Mount: func(s *Socket) []Component {
//			a, b, out := s.Pin("a"), s.Pin("b"), s.Pin("out")
//			return []Component{{Comb: func(c *Circuit) {
//				c.Set(out, c.Get(a) && c.Get(b))
//			}}}
//		}}
type MountFn func(s *Socket) []Component

// A PartSpec is a part blueprint: its pin interface and mount function.
type PartSpec struct {
	// Part name, used in wiring error messages.
	Name string
	// Input pin names. Bus pins are listed individually; use Bus() to
	// build "q[0]" ... "q[n-1]" slices.
	Inputs []string
	// Output pin names.
	Outputs []string
	// Mount function.
	Mount MountFn
}

// NewPart wraps the spec and its wiring into a Part. Inputs left out of w
// are grounded to False, outputs left out are sunk into a scratch pin.
// Unknown pin names and outputs wired to a constant are construction
// defects and panic.
func (p *PartSpec) NewPart(w W) Part {
	w, err := w.Check(p)
	if err != nil {
		panic(err)
	}
	return Part{p, w}
}

// A NewPartFn takes a wiring map and returns a new Part.
type NewPartFn func(w W) Part

// A Part is a part specification wired into its containing chip or
// circuit.
type Part struct {
	*PartSpec
	wires W
}

// W is a set of wires, connecting a part's pins (the map key) to wire
// names in its container.
type W map[string]string

// WireBus connects bus pin k[i] to container wire v[i] for i in [0,bits)
// and returns w for chaining.
func (w W) WireBus(k, v string, bits int) W {
	for i := 0; i < bits; i++ {
		w[BusPinName(k, i)] = BusPinName(v, i)
	}
	return w
}

// Check validates w against the spec's pin interface and returns a
// completed copy: inputs missing from w are wired to False, outputs
// missing from w are wired to "" (a scratch pin is allocated at mount).
func (w W) Check(spec *PartSpec) (W, error) {
	t := make(W, len(spec.Inputs)+len(spec.Outputs))
	seen := 0
	for _, name := range spec.Inputs {
		if outer, ok := w[name]; ok {
			t[name] = outer
			seen++
		} else {
			t[name] = False
		}
	}
	for _, name := range spec.Outputs {
		outer, ok := w[name]
		if ok {
			seen++
		}
		switch outer {
		case False, True, Reset:
			return nil, errors.Errorf("%s: output pin %s wired to constant %q", spec.Name, name, outer)
		}
		t[name] = outer
	}
	if seen != len(w) {
		for name := range w {
			if _, ok := t[name]; !ok {
				return nil, errors.Errorf("%s: unknown pin %q", spec.Name, name)
			}
		}
	}
	return t, nil
}

// Bus returns the expanded pin name list name[0] ... name[bits-1].
func Bus(name string, bits int) []string {
	out := make([]string, bits)
	for i := range out {
		out[i] = BusPinName(name, i)
	}
	return out
}

// BusPinName returns the name of pin i of the given bus.
func BusPinName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}
