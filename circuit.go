// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksim

import (
	"github.com/pkg/errors"
)

// Circuit is a runnable synchronous circuit simulation.
//
// All wire states live in a single frame of booleans. Step advances the
// simulation by exactly one master-clock cycle: combinational outputs are
// settled to a fixed point, then every component commits its register
// update from the settled frame, then outputs are settled again so that
// observed pins reflect the new cycle. Because Tick functions never drive
// pins, all register updates within a Step read the same settled frame
// and commit simultaneously, like hardware registers sharing one clock
// edge.
type Circuit struct {
	pins  []bool
	comps []Component
	count int // pin count
	ticks uint64
	dirty bool
}

// NewCircuit builds a new circuit from the given parts and settles its
// initial combinational state.
func NewCircuit(parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}
	c := &Circuit{count: cstCount}
	root := newSocket(c)
	for _, p := range parts {
		c.comps = append(c.comps, mountPart(root, p)...)
	}
	c.pins = make([]bool, c.count)
	c.pins[cstTrue] = true
	c.settle()
	return c, nil
}

// allocPin allocates a pin and returns its number.
func (c *Circuit) allocPin() int {
	n := c.count
	c.count++
	return n
}

// Get returns the state of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
func (c *Circuit) Get(n int) bool {
	return c.pins[n]
}

// Set sets the state of pin n. Only Comb functions may call Set.
func (c *Circuit) Set(n int, v bool) {
	if c.pins[n] != v {
		c.pins[n] = v
		c.dirty = true
	}
}

// settle runs combinational updates until no pin changes. The iteration
// count is bounded by the combinational depth of the network, which
// cannot exceed the component count; running past it means the netlist
// has a combinational loop, which is a construction defect.
func (c *Circuit) settle() {
	for i := 0; ; i++ {
		c.dirty = false
		c.pins[cstFalse] = false
		c.pins[cstTrue] = true
		for _, u := range c.comps {
			if u.Comb != nil {
				u.Comb(c)
			}
		}
		if !c.dirty {
			return
		}
		if i > len(c.comps)+1 {
			panic("clocksim: combinational loop")
		}
	}
}

// Step advances the simulation by one master-clock cycle.
func (c *Circuit) Step() {
	c.settle()
	for _, u := range c.comps {
		if u.Tick != nil {
			u.Tick(c)
		}
	}
	c.ticks++
	c.settle()
}

// StepN advances the simulation by n master-clock cycles.
func (c *Circuit) StepN(n int) {
	for i := 0; i < n; i++ {
		c.Step()
	}
}

// Reset drives the global reset line. While asserted, every component
// forces its registers to their reset values on each Step, overriding
// any enable or advance logic.
func (c *Circuit) Reset(assert bool) {
	c.pins[cstReset] = assert
	c.settle()
}

// Ticks returns the number of elapsed master-clock cycles.
func (c *Circuit) Ticks() uint64 {
	return c.ticks
}

// Size returns the component count in the circuit.
func (c *Circuit) Size() int { return len(c.comps) }
