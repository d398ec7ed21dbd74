// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksim_test

import (
	"strings"
	"testing"

	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// test parts used across the kernel tests

var notSpec = &sim.PartSpec{
	Name:    "NOT",
	Inputs:  []string{"in"},
	Outputs: []string{"out"},
	Mount: func(s *sim.Socket) []sim.Component {
		in, out := s.Pin("in"), s.Pin("out")
		return []sim.Component{{Comb: func(c *sim.Circuit) {
			c.Set(out, !c.Get(in))
		}}}
	},
}

var andSpec = &sim.PartSpec{
	Name:    "AND",
	Inputs:  []string{"a", "b"},
	Outputs: []string{"out"},
	Mount: func(s *sim.Socket) []sim.Component {
		a, b, out := s.Pin("a"), s.Pin("b"), s.Pin("out")
		return []sim.Component{{Comb: func(c *sim.Circuit) {
			c.Set(out, c.Get(a) && c.Get(b))
		}}}
	},
}

// regSpec is a 1-bit register with an enable, for clocked semantics tests.
var regSpec = &sim.PartSpec{
	Name:    "REG",
	Inputs:  []string{"in", "en"},
	Outputs: []string{"out"},
	Mount: func(s *sim.Socket) []sim.Component {
		in, en, rst := s.Pin("in"), s.Pin("en"), s.Pin(sim.Reset)
		out := s.Pin("out")
		var q bool
		return []sim.Component{{
			Comb: func(c *sim.Circuit) { c.Set(out, q) },
			Tick: func(c *sim.Circuit) {
				switch {
				case c.Get(rst):
					q = false
				case c.Get(en):
					q = c.Get(in)
				}
			},
		}}
	},
}

func TestNewCircuit_empty(t *testing.T) {
	if _, err := sim.NewCircuit(); err == nil {
		t.Fatal("expected error for empty part list")
	}
}

func TestCircuit_combinational(t *testing.T) {
	var in, out bool
	c, err := sim.NewCircuit(
		sim.Input(func() bool { return in })(sim.W{"out": "a"}),
		notSpec.NewPart(sim.W{"in": "a", "out": "na"}),
		notSpec.NewPart(sim.W{"in": "na", "out": "nna"}),
		sim.Output(func(v bool) { out = v })(sim.W{"in": "nna"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []bool{false, true, true, false} {
		in = v
		c.Step()
		if out != v {
			t.Fatalf("in=%v: got out=%v", v, out)
		}
	}
}

// A register chain must shift one stage per cycle: all Ticks commit from
// the same settled frame, regardless of mount order.
func TestCircuit_registerChain(t *testing.T) {
	var in bool
	var q1, q2 bool
	c, err := sim.NewCircuit(
		// second stage mounted first on purpose
		regSpec.NewPart(sim.W{"in": "s1", "en": sim.True, "out": "s2"}),
		regSpec.NewPart(sim.W{"in": "s0", "en": sim.True, "out": "s1"}),
		sim.Input(func() bool { return in })(sim.W{"out": "s0"}),
		sim.Output(func(v bool) { q1 = v })(sim.W{"in": "s1"}),
		sim.Output(func(v bool) { q2 = v })(sim.W{"in": "s2"}),
	)
	if err != nil {
		t.Fatal(err)
	}

	in = true
	c.Step()
	if !q1 || q2 {
		t.Fatalf("after 1 cycle: q1=%v q2=%v, expected true false", q1, q2)
	}
	in = false
	c.Step()
	if q1 || !q2 {
		t.Fatalf("after 2 cycles: q1=%v q2=%v, expected false true", q1, q2)
	}
}

func TestCircuit_reset(t *testing.T) {
	var q bool
	c, err := sim.NewCircuit(
		regSpec.NewPart(sim.W{"in": sim.True, "en": sim.True, "out": "q"}),
		sim.Output(func(v bool) { q = v })(sim.W{"in": "q"}),
	)
	if err != nil {
		t.Fatal(err)
	}

	c.Step()
	if !q {
		t.Fatal("register did not load")
	}

	// reset overrides the permanently asserted enable
	c.Reset(true)
	c.Step()
	if q {
		t.Fatal("register not cleared by reset")
	}
	c.Step()
	if q {
		t.Fatal("register reloaded while reset held")
	}

	c.Reset(false)
	c.Step()
	if !q {
		t.Fatal("register did not reload after reset release")
	}
}

func TestCircuit_combinationalLoop(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on combinational loop")
		}
	}()
	// a NOT gate feeding itself oscillates and can never settle
	c, err := sim.NewCircuit(
		notSpec.NewPart(sim.W{"in": "a", "out": "a"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	c.Step()
}

func TestCircuit_busIO(t *testing.T) {
	var in, out int64
	c, err := sim.NewCircuit(
		sim.InputN(8, func() int64 { return in })(sim.W{}.WireBus("out", "v", 8)),
		sim.OutputN(8, func(n int64) { out = n })(sim.W{}.WireBus("in", "v", 8)),
	)
	if err != nil {
		t.Fatal(err)
	}
	in = 0xa5
	c.Step()
	if out != in {
		t.Fatalf("expected %#x, got %#x", in, out)
	}
}

// An input left out of the wiring map reads a constant low.
func TestNewPart_defaultWiring(t *testing.T) {
	var out bool
	c, err := sim.NewCircuit(
		andSpec.NewPart(sim.W{"a": sim.True, "out": "o"}), // b unwired
		sim.Output(func(v bool) { out = v })(sim.W{"in": "o"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	c.Step()
	if out {
		t.Fatal("unwired input did not ground to false")
	}
}

func TestNewPart_badWiring(t *testing.T) {
	t.Run("unknown pin", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic on unknown pin")
			}
		}()
		notSpec.NewPart(sim.W{"bogus": "a"})
	})
	t.Run("output to constant", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic on output wired to constant")
			}
		}()
		notSpec.NewPart(sim.W{"in": "a", "out": sim.False})
	})
}

func TestChip_validation(t *testing.T) {
	td := []struct {
		name  string
		in    []string
		out   []string
		parts []sim.Part
		want  string
	}{
		{
			name: "output drives chip input",
			in:   []string{"a"},
			out:  []string{"out"},
			parts: []sim.Part{
				notSpec.NewPart(sim.W{"in": "a", "out": "a"}),
				notSpec.NewPart(sim.W{"in": "a", "out": "out"}),
			},
			want: "drives chip input",
		},
		{
			name: "wire driven twice",
			in:   []string{"a"},
			out:  []string{"out"},
			parts: []sim.Part{
				notSpec.NewPart(sim.W{"in": "a", "out": "out"}),
				notSpec.NewPart(sim.W{"in": "a", "out": "out"}),
			},
			want: "driven by both",
		},
		{
			name: "undriven chip output",
			in:   []string{"a"},
			out:  []string{"out"},
			parts: []sim.Part{
				notSpec.NewPart(sim.W{"in": "a"}),
			},
			want: "not driven",
		},
		{
			name: "floating part input",
			in:   []string{"a"},
			out:  []string{"out"},
			parts: []sim.Part{
				andSpec.NewPart(sim.W{"a": "a", "b": "nowhere", "out": "out"}),
			},
			want: "not connected",
		},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := sim.Chip("BAD", d.in, d.out, d.parts)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), d.want) {
				t.Fatalf("error %q does not mention %q", err, d.want)
			}
		})
	}
}

func TestChip_compose(t *testing.T) {
	// xor from and/not primitives, then two chip instances back to back
	xor, err := sim.Chip("XOR", []string{"a", "b"}, []string{"out"}, []sim.Part{
		notSpec.NewPart(sim.W{"in": "a", "out": "na"}),
		notSpec.NewPart(sim.W{"in": "b", "out": "nb"}),
		andSpec.NewPart(sim.W{"a": "a", "b": "nb", "out": "w0"}),
		andSpec.NewPart(sim.W{"a": "na", "b": "b", "out": "w1"}),
		notSpec.NewPart(sim.W{"in": "w0", "out": "nw0"}),
		notSpec.NewPart(sim.W{"in": "w1", "out": "nw1"}),
		andSpec.NewPart(sim.W{"a": "nw0", "b": "nw1", "out": "nor"}),
		notSpec.NewPart(sim.W{"in": "nor", "out": "out"}),
	})
	if err != nil {
		t.Fatal(err)
	}

	var a, b, out bool
	c, err := sim.NewCircuit(
		sim.Input(func() bool { return a })(sim.W{"out": "x"}),
		sim.Input(func() bool { return b })(sim.W{"out": "y"}),
		xor(sim.W{"a": "x", "b": "y", "out": "x0"}),
		xor(sim.W{"a": "x0", "b": "y", "out": "x1"}),
		sim.Output(func(v bool) { out = v })(sim.W{"in": "x1"}),
	)
	if err != nil {
		t.Fatal(err)
	}

	// x1 = (a^b)^b = a
	for i := 0; i < 4; i++ {
		a, b = i&2 != 0, i&1 != 0
		c.Step()
		if out != a {
			t.Fatalf("a=%v b=%v: got %v", a, b, out)
		}
	}
}
