// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clklib_test

import (
	"testing"
	"testing/quick"

	"github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock/clklib"
	"github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock/clktest"
)

func width(n int) int {
	w := 1
	for 1<<uint(w) < n {
		w++
	}
	return w
}

func TestCounter_badModulus(t *testing.T) {
	for _, n := range []int{0, -1, -327} {
		if _, err := clklib.Counter(n); err == nil {
			t.Errorf("Counter(%d): expected configuration error", n)
		}
	}
}

func TestCounter_wrap(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 60, 327} {
		ctr, err := clklib.Counter(n)
		if err != nil {
			t.Fatal(err)
		}
		h := clktest.New(t, ctr)
		h.Set("en", true)
		w := width(n)
		for i := 0; i <= 2*n; i++ {
			if got, want := h.OutBus("q", w), i%n; got != want {
				t.Fatalf("n=%d tick %d: q=%d, want %d", n, i, got, want)
			}
			if got, want := h.Out("tc"), i%n == n-1; got != want {
				t.Fatalf("n=%d tick %d: tc=%v, want %v", n, i, got, want)
			}
			h.Step()
		}
	}
}

// After exactly n enabled cycles from reset the count returns to 0, with
// tc asserted exactly once, at cycle n-1.
func TestCounter_period(t *testing.T) {
	f := func(m uint16) bool {
		n := int(m%300) + 1
		ctr, err := clklib.Counter(n)
		if err != nil {
			return false
		}
		h := clktest.New(t, ctr)
		h.Set("en", true)
		highs, last := 0, -1
		for i := 0; i < n; i++ {
			if h.Out("tc") {
				highs++
				last = i
			}
			h.Step()
		}
		return highs == 1 && last == n-1 && h.OutBus("q", width(n)) == 0
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 25}); err != nil {
		t.Fatal(err)
	}
}

func TestCounter_enable(t *testing.T) {
	ctr, err := clklib.Counter(10)
	if err != nil {
		t.Fatal(err)
	}
	h := clktest.New(t, ctr)

	h.Set("en", true)
	h.StepN(4)
	if got := h.OutBus("q", 4); got != 4 {
		t.Fatalf("q=%d, want 4", got)
	}

	h.Set("en", false)
	h.StepN(10)
	if got := h.OutBus("q", 4); got != 4 {
		t.Fatalf("q=%d after disabled cycles, want 4", got)
	}
}

func TestCounter_reset(t *testing.T) {
	ctr, err := clklib.Counter(10)
	if err != nil {
		t.Fatal(err)
	}
	h := clktest.New(t, ctr)

	h.Set("en", true)
	h.StepN(7)

	// reset overrides the asserted enable
	h.Reset(true)
	h.Step()
	if got := h.OutBus("q", 4); got != 0 {
		t.Fatalf("q=%d after reset, want 0", got)
	}
	h.StepN(3)
	if got := h.OutBus("q", 4); got != 0 {
		t.Fatalf("q=%d while reset held, want 0", got)
	}

	h.Reset(false)
	h.Step()
	if got := h.OutBus("q", 4); got != 1 {
		t.Fatalf("q=%d after reset release, want 1", got)
	}
}
