// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"math/bits"

	"github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock/clklib"
)

// readout reconstructs the displayed time from the multiplexed segment
// and anode lines, latching each digit whenever its anode is driven.
// This is the observer's view of the device: only the external pins are
// sampled, never the model's internal state.
type readout struct {
	seg, an uint8
	digits  [4]int
}

// observe latches the digit currently lit, if any. At brightness preset
// 0 the display is fully blanked and the latched digits go stale; that
// matches what a camera pointed at the real device would see.
func (r *readout) observe() {
	if r.an == 0 {
		return
	}
	d := bits.TrailingZeros8(r.an)
	if d > 3 {
		return
	}
	if v, ok := clklib.DecodeSeg(r.seg); ok {
		r.digits[d] = v
	}
}

// Time returns the latched digits as "HH:MM". The anode scan order puts
// minute ones on anode 0 and hour tens on anode 3.
func (r *readout) Time() string {
	return fmt.Sprintf("%d%d:%d%d", r.digits[3], r.digits[2], r.digits[1], r.digits[0])
}
