// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package clocksim is a cycle-accurate model of the timekeeping and alarm
logic of a digital alarm clock ASIC.

The package itself is a small synchronous simulation kernel: parts are
mounted into a circuit, wired together by name, and the whole network is
advanced one master-clock cycle at a time. Every part splits its behavior
into a combinational function of current register state and a register
update committed at the clock edge, so one Step reproduces the register
semantics of the real silicon: all next-state values are computed from the
settled signals of the elapsing cycle and committed simultaneously.

The clock circuit proper (counters, clock divider, debouncers, BCD
timekeepers, alarm state machine and display driver) lives in the clklib
package. The clksim command runs the assembled clock.
*/
package clocksim
