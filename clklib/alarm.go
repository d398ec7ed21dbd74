// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package clklib

import (
	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
)

// alarm state machine states
type alarmState uint8

const (
	stReady alarmState = iota
	stAlarming
	stStandby
)

// AlarmFSM returns the alarm state machine. Each cycle it compares the
// current time digits against the alarm time digits and samples the
// armed flag and the any-button line.
//
//	Inputs:
//	  arm                               // alarm enabled level
//	  btn                               // OR of the debounced button set
//	  th10[2], th1[4], tm10[3], tm1[4]  // current time, BCD
//	  ah10[2], ah1[4], am10[3], am1[4]  // alarm time, BCD
//	Outputs: alarm
//
// From READY the machine enters ALARMING when armed and the times match.
// Any button press while ALARMING moves to STANDBY, which suppresses the
// alarm for the remainder of the matching minute without disarming it;
// both ALARMING and STANDBY fall back to READY once the time moves on.
// alarm is combinational: high iff the state is ALARMING. Reset forces
// READY.
func AlarmFSM(w sim.W) sim.Part { return alarmFSM.NewPart(w) }

var alarmFSM = sim.PartSpec{
	Name:    "ALARMFSM",
	Inputs:  alarmInputs(),
	Outputs: []string{"alarm"},
	Mount: func(s *sim.Socket) []sim.Component {
		arm, btn, rst := s.Pin("arm"), s.Pin("btn"), s.Pin(sim.Reset)
		out := s.Pin("alarm")
		cur := timeBuses(s, "t")
		set := timeBuses(s, "a")
		state := stReady
		return []sim.Component{{
			Comb: func(c *sim.Circuit) {
				c.Set(out, state == stAlarming)
			},
			Tick: func(c *sim.Circuit) {
				if c.Get(rst) {
					state = stReady
					return
				}
				eq := true
				for i := range cur {
					if sim.Int64(c, cur[i]) != sim.Int64(c, set[i]) {
						eq = false
						break
					}
				}
				switch state {
				case stReady:
					if c.Get(arm) && eq {
						state = stAlarming
					}
				case stAlarming:
					switch {
					case c.Get(btn):
						state = stStandby
					case !eq:
						state = stReady
					}
				case stStandby:
					if !eq {
						state = stReady
					}
				}
			},
		}}
	},
}

func alarmInputs() []string {
	in := []string{"arm", "btn"}
	for _, p := range []string{"t", "a"} {
		in = append(in, sim.Bus(p+"h10", 2)...)
		in = append(in, sim.Bus(p+"h1", 4)...)
		in = append(in, sim.Bus(p+"m10", 3)...)
		in = append(in, sim.Bus(p+"m1", 4)...)
	}
	return in
}

// timeBuses resolves the four digit buses of a time input prefixed with p.
func timeBuses(s *sim.Socket, p string) [4][]int {
	return [4][]int{
		s.Bus(p+"h10", 2),
		s.Bus(p+"h1", 4),
		s.Bus(p+"m10", 3),
		s.Bus(p+"m1", 4),
	}
}
