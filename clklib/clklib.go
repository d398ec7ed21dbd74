// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

// Package clklib provides the parts of the alarm clock circuit: the
// modulo counter primitive, the clock divider chain, button debouncers,
// BCD timekeepers, the alarm state machine and the multiplexed 7-segment
// display driver, plus the gate and flip-flop glue joining them. The
// AlarmClock chip assembles the whole core.
package clklib

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pOut = "out"
	pSel = "sel"
	pEn  = "en"
	pTc  = "tc"
)
