// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksim

import (
	"github.com/pkg/errors"
)

// Chip composes existing parts into a new part. The inputs and outputs
// name the pin interface of the chip; every other wire named by the
// sub-parts is internal to it and allocated per mounted instance.
//
// A divide-by-four pulse chain could be created like this:
//
//	div4, err := Chip("DIV4", nil, []string{"out"}, []Part{
//		c2a(W{"en": "true", "tc": "half"}),
//		c2b(W{"en": "half", "tc": "out"}),
//	})
//
// The returned NewPartFn composes the chip into other chips or circuits.
//
// Chip rejects wiring that could not exist in silicon: two part outputs
// driving the same wire, a part output driving a chip input, a chip
// output or part input left undriven.
func Chip(name string, inputs, outputs []string, parts []Part) (NewPartFn, error) {
	in := make(map[string]bool, len(inputs))
	for _, n := range inputs {
		in[n] = true
	}

	// map every internal wire to the part output driving it
	driven := make(map[string]string)
	for _, p := range parts {
		for _, o := range p.Outputs {
			w := p.wires[o]
			if w == "" {
				continue
			}
			if in[w] {
				return nil, errors.Errorf("%s: output %s.%s drives chip input %q", name, p.Name, o, w)
			}
			if prev, ok := driven[w]; ok {
				return nil, errors.Errorf("%s: wire %q driven by both %s and %s.%s", name, w, prev, p.Name, o)
			}
			driven[w] = p.Name + "." + o
		}
	}
	for _, o := range outputs {
		if _, ok := driven[o]; !ok {
			return nil, errors.Errorf("%s: chip output %q not driven by any part", name, o)
		}
	}
	for _, p := range parts {
		for _, i := range p.Inputs {
			w := p.wires[i]
			if w == False || w == True || w == Reset || in[w] {
				continue
			}
			if _, ok := driven[w]; !ok {
				return nil, errors.Errorf("%s: wire %q (input %s.%s) not connected to any output", name, w, p.Name, i)
			}
		}
	}

	spec := &PartSpec{Name: name, Inputs: inputs, Outputs: outputs}
	spec.Mount = func(s *Socket) []Component {
		// fresh namespace per instance; interface pins map through to
		// the container, internal wires allocate on first use.
		sub := newSocket(s.c)
		for _, n := range spec.Inputs {
			sub.m[n] = s.Pin(n)
		}
		for _, n := range spec.Outputs {
			sub.m[n] = s.Pin(n)
		}
		var cs []Component
		for _, p := range parts {
			cs = append(cs, mountPart(sub, p)...)
		}
		return cs
	}
	return spec.NewPart, nil
}
