//go:build !(linux && arm) || disablegpio
// +build !linux !arm disablegpio

package main

// This file provides a stub hardware line provider so the server can run and
// be tested on a desktop machine without GPIO hardware.  Stub lines hold
// their level in memory and read back whatever was last driven.  On the Pi,
// hal_rpi.go supplies a periph.io backed provider instead, selected by build
// tag.

type stubLine struct {
    high bool
}

// PhysicalPin serialises all access to a line, so the stub keeps no lock of
// its own.
func (l *stubLine) IsHigh() bool { return l.high }
func (l *stubLine) DriveHigh()   { l.high = true }
func (l *stubLine) DriveLow()    { l.high = false }

type stubProvider struct{}

// newLineProvider returns the provider for this build: memory-backed lines.
func newLineProvider() LineProvider {
    return stubProvider{}
}

func (stubProvider) OpenInput(index PinIndex) (HardwareLine, error) {
    return &stubLine{}, nil
}

func (stubProvider) OpenOutput(index PinIndex) (HardwareLine, error) {
    return &stubLine{}, nil
}
