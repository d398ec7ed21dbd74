// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

// Command clksim runs the alarm clock model from its external pins: it
// programs the configured times through the buttons, then free-runs the
// master clock for the configured number of simulated seconds, watching
// the display and alarm lines. The alarm line can be rendered to a wav
// file, and an interactive mode maps keyboard keys to the buttons.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	sim "github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock"
	"github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock/clklib"
)

var buttons = []string{"hrs", "mins", "set", "arm", "dim", "sel"}

// clockSim owns a mounted clock circuit plus the pin-level adapters
// around it: settable button levels in, latched display readout and the
// alarm level out.
type clockSim struct {
	c        *sim.Circuit
	btn      map[string]*bool
	alarm    bool
	disp     readout
	debounce int
	wav      *toneWriter
	log      *zap.SugaredLogger
}

func newClockSim(cfg *Config, log *zap.SugaredLogger) (*clockSim, error) {
	clk, err := clklib.AlarmClock(cfg.Debounce)
	if err != nil {
		return nil, err
	}

	s := &clockSim{
		btn:      make(map[string]*bool, len(buttons)),
		debounce: cfg.Debounce,
		log:      log,
	}
	w := sim.W{"alarm": "alarm"}.WireBus("seg", "seg", 7).WireBus("an", "an", 4)
	parts := make([]sim.Part, 0, len(buttons)+4)
	for _, n := range buttons {
		v := new(bool)
		s.btn[n] = v
		parts = append(parts, sim.Input(func() bool { return *v })(sim.W{"out": n}))
		w[n] = n
	}
	parts = append(parts,
		clk(w),
		sim.OutputN(7, func(v int64) { s.disp.seg = uint8(v) })(sim.W{}.WireBus("in", "seg", 7)),
		sim.OutputN(4, func(v int64) { s.disp.an = uint8(v) })(sim.W{}.WireBus("in", "an", 4)),
		sim.Output(func(v bool) { s.alarm = v })(sim.W{"in": "alarm"}),
	)

	c, err := sim.NewCircuit(parts...)
	if err != nil {
		return nil, err
	}
	s.c = c
	log.Debugw("circuit mounted", "components", c.Size())
	return s, nil
}

func (s *clockSim) step() {
	s.c.Step()
	s.disp.observe()
	if s.wav != nil {
		s.wav.Sample(s.alarm)
	}
}

func (s *clockSim) stepN(n int) {
	for i := 0; i < n; i++ {
		s.step()
	}
}

// press holds a button long enough to clear the debounce filter, then
// releases it and lets the filter settle again.
func (s *clockSim) press(name string) {
	*s.btn[name] = true
	s.stepN(s.debounce + 2)
	*s.btn[name] = false
	s.stepN(s.debounce + 1)
}

// program sets the configured times through the buttons, exactly as a
// user would: increments with set held edit the alarm time, increments
// without it edit the live time, and dim presses walk the brightness
// preset from its reset default to the configured one.
func (s *clockSim) program(cfg *Config) error {
	th, tm, err := parseHHMM(cfg.Time)
	if err != nil {
		return errors.Wrap(err, "time")
	}
	ah, am, err := parseHHMM(cfg.Alarm)
	if err != nil {
		return errors.Wrap(err, "alarm")
	}

	*s.btn["set"] = true
	s.stepN(s.debounce + 1)
	for i := 0; i < ah; i++ {
		s.press("hrs")
	}
	for i := 0; i < am; i++ {
		s.press("mins")
	}
	*s.btn["set"] = false
	s.stepN(s.debounce + 1)

	for i := 0; i < th; i++ {
		s.press("hrs")
	}
	for i := 0; i < tm; i++ {
		s.press("mins")
	}

	if cfg.Armed {
		s.press("arm")
	}
	for b := clklib.DefaultBrightness; b != cfg.Brightness; b = (b + 1) & 7 {
		s.press("dim")
	}

	s.log.Infow("clock programmed",
		"time", cfg.Time, "alarm", cfg.Alarm, "armed", cfg.Armed,
		"brightness", cfg.Brightness, "cycles", s.c.Ticks())
	return nil
}

// run free-runs the clock for the given number of simulated seconds,
// logging alarm transitions.
func (s *clockSim) run(seconds int) {
	wasAlarm := s.alarm
	for i := 0; i < seconds; i++ {
		for j := 0; j < clklib.RefHz; j++ {
			s.step()
			if s.alarm != wasAlarm {
				wasAlarm = s.alarm
				s.log.Infow("alarm transition",
					"on", s.alarm, "time", s.disp.Time(), "cycles", s.c.Ticks())
			}
		}
		s.log.Debugw("display", "time", s.disp.Time(), "alarm", s.alarm, "second", i+1)
	}
	s.log.Infow("run complete",
		"seconds", seconds, "time", s.disp.Time(), "cycles", s.c.Ticks())
}

// runInteractive paces the model at roughly wall-clock speed and maps
// keys to buttons: h/m increment, s holds set, a toggles the arm, d
// steps the brightness, v flips the display source, q quits.
func (s *clockSim) runInteractive(k *keyboard) {
	const chunk = clklib.RefHz / 100
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()

	hold := make(map[string]int)
	n := 0
	for {
		select {
		case b, ok := <-k.ch:
			if !ok {
				return
			}
			switch b {
			case 'q', 3: // ctrl-c in cbreak mode
				fmt.Println()
				return
			case 'h':
				hold["hrs"] = 2
			case 'm':
				hold["mins"] = 2
			case 'a':
				hold["arm"] = 2
			case 'd':
				hold["dim"] = 2
			case 's':
				*s.btn["set"] = !*s.btn["set"]
			case 'v':
				*s.btn["sel"] = !*s.btn["sel"]
			}
		case <-tick.C:
			for name, c := range hold {
				*s.btn[name] = c > 0
				if c > 0 {
					hold[name] = c - 1
				}
			}
			s.stepN(chunk)
			if n++; n%25 == 0 {
				alarm := " "
				if s.alarm {
					alarm = "*"
				}
				set := " "
				if *s.btn["set"] {
					set = "S"
				}
				fmt.Printf("\r%s %s%s ", s.disp.Time(), alarm, set)
			}
		}
	}
}

func main() {
	var (
		configPath  = flag.String("config", "", "yaml configuration file")
		seconds     = flag.Int("seconds", 0, "simulated run time, overrides the config")
		wavPath     = flag.String("wav", "", "record the alarm line to a wav file")
		interactive = flag.Bool("interactive", false, "interactive mode: keys drive the buttons")
		verbose     = flag.Bool("v", false, "development logging")
	)
	flag.Parse()

	logcfg := zap.NewProductionConfig()
	if *verbose {
		logcfg = zap.NewDevelopmentConfig()
	}
	zl, err := logcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = zl.Sync() }()
	log := zl.Sugar()

	cfg := DefaultConfig()
	if *configPath != "" {
		if cfg, err = LoadConfig(*configPath); err != nil {
			log.Fatalw("bad configuration", "error", err)
		}
	}
	if *seconds > 0 {
		cfg.Seconds = *seconds
	}

	s, err := newClockSim(cfg, log)
	if err != nil {
		log.Fatalw("mount failed", "error", err)
	}
	if *wavPath != "" {
		s.wav = newToneWriter(*wavPath)
	}

	if err := s.program(cfg); err != nil {
		log.Fatalw("bad configuration", "error", err)
	}

	if *interactive {
		k, err := openKeyboard()
		if err != nil {
			log.Fatalw("no terminal", "error", err)
		}
		s.runInteractive(k)
		k.Close()
	} else {
		s.run(cfg.Seconds)
	}

	if s.wav != nil {
		if err := s.wav.Close(); err != nil {
			log.Fatalw("wav write failed", "error", err)
		}
		log.Infow("alarm audio written", "path", *wavPath, "samples", len(s.wav.data))
	}
}
