// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksim

import "strconv"

// Int64 returns the pins as an int64. Pin 0 is lsb.
func Int64(c *Circuit, pins []int) int64 {
	var out int64
	for bit := range pins {
		if c.Get(pins[bit]) {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// SetInt64 sets the pins to the given int64 value.
func SetInt64(c *Circuit, pins []int, v int64) {
	for bit := range pins {
		c.Set(pins[bit], v&(1<<uint(bit)) != 0)
	}
}

// Input creates a function based input.
//
//	Outputs: out
//	Function: out = f()
func Input(f func() bool) NewPartFn {
	p := &PartSpec{
		Name:    "INPUT",
		Outputs: []string{"out"},
		Mount: func(s *Socket) []Component {
			pin := s.Pin("out")
			return []Component{{Comb: func(c *Circuit) {
				c.Set(pin, f())
			}}}
		},
	}
	return p.NewPart
}

// Output creates an output or probe. f is called with the named pin
// state on every settle pass; the last call of a Step carries the
// settled value.
//
//	Inputs: in
//	Function: f(in)
func Output(f func(bool)) NewPartFn {
	p := &PartSpec{
		Name:   "OUTPUT",
		Inputs: []string{"in"},
		Mount: func(s *Socket) []Component {
			pin := s.Pin("in")
			return []Component{{Comb: func(c *Circuit) {
				f(c.Get(pin))
			}}}
		},
	}
	return p.NewPart
}

// InputN creates an input bus of the given bits size.
func InputN(bits int, f func() int64) NewPartFn {
	return (&PartSpec{
		Name:    "INPUT" + strconv.Itoa(bits),
		Outputs: Bus("out", bits),
		Mount: func(s *Socket) []Component {
			pins := s.Bus("out", bits)
			return []Component{{Comb: func(c *Circuit) {
				SetInt64(c, pins, f())
			}}}
		}}).NewPart
}

// OutputN creates an output bus of the given bits size.
func OutputN(bits int, f func(int64)) NewPartFn {
	return (&PartSpec{
		Name:   "OUTPUT" + strconv.Itoa(bits),
		Inputs: Bus("in", bits),
		Mount: func(s *Socket) []Component {
			pins := s.Bus("in", bits)
			return []Component{{Comb: func(c *Circuit) {
				f(Int64(c, pins))
			}}}
		}}).NewPart
}
