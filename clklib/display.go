// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clklib

import (
	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// SegDigits is the BCD to 7-segment decode table, segment a in bit 0
// through segment g in bit 6, active high. Entries 10-15 are blank: the
// timekeepers never produce them, but the decoder must still map them.
var SegDigits = [16]uint8{
	0x3f, 0x06, 0x5b, 0x4f, 0x66, 0x6d, 0x7d, 0x07, 0x7f, 0x6f,
	0, 0, 0, 0, 0, 0,
}

// brightness presets: ramp thresholds for the 6-bit PWM ramp. The anodes
// are blanked while ramp >= threshold, so preset 0 blanks every cycle
// and preset 7 (threshold past the maximum ramp value) never blanks.
var brightness = [8]uint8{0, 2, 4, 9, 19, 33, 50, 64}

// DefaultBrightness is the preset selected at reset.
const DefaultBrightness = 4

// Display returns the multiplexed 7-segment display driver. An 8-bit
// phase counter free-runs on the master clock: its low 2 bits select the
// active digit (m1, m10, h1, h10), its high 6 bits form a PWM ramp
// compared against the current brightness threshold. While the ramp is
// at or above the threshold all four anode lines are forced off, dimming
// the display by duty cycle. dim cycles the preset 0..7 and back to 0.
//
//	Inputs:
//	  sel                               // render source b instead of a
//	  dim                               // brightness step pulse (debounced edge)
//	  ah10[2], ah1[4], am10[3], am1[4]  // time source a (live time)
//	  bh10[2], bh1[4], bm10[3], bm1[4]  // time source b (alarm/edit time)
//	Outputs: seg[7], an[4]              // segment and anode lines, active high
func Display(w sim.W) sim.Part { return display.NewPart(w) }

var display = sim.PartSpec{
	Name:    "DISPLAY",
	Inputs:  displayInputs(),
	Outputs: append(sim.Bus("seg", 7), sim.Bus("an", 4)...),
	Mount: func(s *sim.Socket) []sim.Component {
		sel, dim, rst := s.Pin(pSel), s.Pin("dim"), s.Pin(sim.Reset)
		seg, an := s.Bus("seg", 7), s.Bus("an", 4)
		ta, tb := timeBuses(s, "a"), timeBuses(s, "b")
		var phase uint8
		preset := DefaultBrightness
		return []sim.Component{{
			Comb: func(c *sim.Circuit) {
				src := &ta
				if c.Get(sel) {
					src = &tb
				}
				digit := int(phase & 3)
				// timeBuses orders h10 first; digit 0 is m1
				bcd := sim.Int64(c, src[3-digit])
				sim.SetInt64(c, seg, int64(SegDigits[bcd&0xf]))
				ramp := phase >> 2
				if ramp >= brightness[preset] {
					sim.SetInt64(c, an, 0)
				} else {
					sim.SetInt64(c, an, 1<<uint(digit))
				}
			},
			Tick: func(c *sim.Circuit) {
				if c.Get(rst) {
					phase = 0
					preset = DefaultBrightness
					return
				}
				if c.Get(dim) {
					preset = (preset + 1) & 7
				}
				phase++
			},
		}}
	},
}

// DecodeSeg maps a segment pattern back to the digit that produced it.
// ok is false for patterns the decode table never emits, including the
// all-off pattern.
func DecodeSeg(pattern uint8) (digit int, ok bool) {
	for d := 0; d <= 9; d++ {
		if SegDigits[d] == pattern {
			return d, true
		}
	}
	return 0, false
}

func displayInputs() []string {
	in := []string{pSel, "dim"}
	for _, p := range []string{"a", "b"} {
		in = append(in, sim.Bus(p+"h10", 2)...)
		in = append(in, sim.Bus(p+"h1", 4)...)
		in = append(in, sim.Bus(p+"m10", 3)...)
		in = append(in, sim.Bus(p+"m1", 4)...)
	}
	return in
}
