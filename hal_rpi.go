//go:build linux && arm && !disablegpio
// +build linux,arm,!disablegpio

// This file provides a Raspberry Pi implementation of the hardware line
// provider using the periph.io library.  When cross‑compiling on other
// platforms or when the build tag "disablegpio" is specified, hal.go is used
// instead.

package main

import (
    "fmt"

    // Use the new periph module layout.  See https://periph.io/news/2020/a_new_start/
    "periph.io/x/conn/v3/gpio"
    "periph.io/x/conn/v3/gpio/gpioreg"
    "periph.io/x/host/v3"
)

// periphLine wraps a claimed gpio.PinIO.  Drive errors after a successful
// claim are not modelled; the line was already configured for its direction
// when it was handed out, and the registry only routes writes to output
// lines.
type periphLine struct {
    pin gpio.PinIO
}

func (l periphLine) IsHigh() bool {
    return l.pin.Read() == gpio.High
}

func (l periphLine) DriveHigh() {
    _ = l.pin.Out(gpio.High)
}

func (l periphLine) DriveLow() {
    _ = l.pin.Out(gpio.Low)
}

type periphProvider struct{}

// newLineProvider returns the provider for this build: real GPIO lines
// addressed by their BCM numbers.
func newLineProvider() LineProvider {
    return periphProvider{}
}

// open initialises periph host state and resolves the named pin.  host.Init
// can safely be called multiple times; subsequent calls are no‑ops.  A pin
// that cannot be resolved fails the claim, which aborts server startup.
func (periphProvider) open(index PinIndex) (gpio.PinIO, error) {
    if _, err := host.Init(); err != nil {
        return nil, err
    }
    p := gpioreg.ByName(fmt.Sprintf("GPIO%d", index))
    if p == nil {
        return nil, fmt.Errorf("no GPIO pin with BCM number %d", index)
    }
    return p, nil
}

func (pp periphProvider) OpenInput(index PinIndex) (HardwareLine, error) {
    p, err := pp.open(index)
    if err != nil {
        return nil, err
    }
    if err := p.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
        return nil, fmt.Errorf("configuring GPIO%d as input: %w", index, err)
    }
    return periphLine{pin: p}, nil
}

func (pp periphProvider) OpenOutput(index PinIndex) (HardwareLine, error) {
    p, err := pp.open(index)
    if err != nil {
        return nil, err
    }
    if err := p.Out(gpio.Low); err != nil {
        return nil, fmt.Errorf("configuring GPIO%d as output: %w", index, err)
    }
    return periphLine{pin: p}, nil
}
