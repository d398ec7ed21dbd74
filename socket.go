// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksim

// A Socket maps a part's pin names to pin numbers in a circuit.
type Socket struct {
	m map[string]int
	c *Circuit
}

func newSocket(c *Circuit) *Socket {
	return &Socket{
		m: map[string]int{False: cstFalse, True: cstTrue, Reset: cstReset},
		c: c,
	}
}

// Pin returns the pin number allocated to the given pin name.
// It panics if the pin does not exist.
func (s *Socket) Pin(name string) int {
	n, ok := s.m[name]
	if !ok {
		panic("pin " + name + " does not exist")
	}
	return n
}

// PinOrNew returns the pin number allocated to the given pin name,
// allocating a new pin if none exists yet.
func (s *Socket) PinOrNew(name string) int {
	n, ok := s.m[name]
	if !ok {
		n = s.c.allocPin()
		s.m[name] = n
	}
	return n
}

// Bus returns the pin numbers allocated to the given bus name.
func (s *Socket) Bus(name string, bits int) []int {
	out := make([]int, bits)
	for i := range out {
		out[i] = s.Pin(BusPinName(name, i))
	}
	return out
}

// mountPart mounts p into the host socket's namespace. Wires named in p
// resolve to host pins, allocating as needed; outputs wired to "" sink
// into fresh scratch pins.
func mountPart(host *Socket, p Part) []Component {
	sub := newSocket(host.c)
	for pin, outer := range p.wires {
		if outer == "" {
			sub.m[pin] = host.c.allocPin()
			continue
		}
		sub.m[pin] = host.PinOrNew(outer)
	}
	return p.Mount(sub)
}
