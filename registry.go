package main

import (
    "fmt"
    "strconv"
    "strings"
)

// PinIndex identifies one digital line.  Index values are scoped per backend:
// the same index may name both a physical and a simulated pin, and resolution
// always prefers the physical one.
type PinIndex uint8

// PinIndexSet is a whitelist of pin indices.  Sets are built once at startup
// and never modified afterwards.
type PinIndexSet map[PinIndex]bool

// Contains reports whether index is a member of the set.
func (s PinIndexSet) Contains(index PinIndex) bool {
    return s[index]
}

// parsePinList parses a comma-separated list of pin indices, e.g. "2,3,17".
// The empty string yields the empty set.  Empty elements ("1,,2") are skipped
// rather than rejected.
func parsePinList(list string) (PinIndexSet, error) {
    set := make(PinIndexSet)
    for _, part := range strings.Split(list, ",") {
        if part == "" {
            continue
        }
        value, err := strconv.ParseUint(part, 10, 8)
        if err != nil {
            return nil, fmt.Errorf("invalid pin index %q: %w", part, err)
        }
        set[PinIndex(value)] = true
    }
    return set, nil
}

// PinSet holds the four startup whitelists: which indices may be read or
// written, separately for the physical and simulated backends.
type PinSet struct {
    GetWhitelist PinIndexSet
    SetWhitelist PinIndexSet
    GetSimulated PinIndexSet
    SetSimulated PinIndexSet
}

// HardwareLine is the capability the hardware driver exposes for one claimed
// line.  Reads and drives do not fail; a line that could not be configured is
// never handed out in the first place.
type HardwareLine interface {
    IsHigh() bool
    DriveHigh()
    DriveLow()
}

// LineProvider acquires hardware lines by index, configured for the requested
// direction at claim time.
type LineProvider interface {
    OpenInput(index PinIndex) (HardwareLine, error)
    OpenOutput(index PinIndex) (HardwareLine, error)
}

// Registry maps pin indices to pins.  It is built once during startup and
// shared read-only by every request; only the levels held by the individual
// pins mutate at runtime.
type Registry struct {
    pins      PinSet
    physical  map[PinIndex]*PhysicalPin
    simulated map[PinIndex]*SimulatedPin
}

// NewRegistry claims hardware lines and creates simulated pins according to
// the whitelists.  Hardware is touched only when both physical whitelists are
// non-empty.  Any claim failure aborts construction, so the service never
// starts with a partially initialised registry.
func NewRegistry(pins PinSet, provider LineProvider) (*Registry, error) {
    physical := make(map[PinIndex]*PhysicalPin)
    if len(pins.GetWhitelist) > 0 && len(pins.SetWhitelist) > 0 {
        // Settable pins become outputs; remaining gettable pins become inputs.
        for index := range pins.SetWhitelist {
            line, err := provider.OpenOutput(index)
            if err != nil {
                return nil, fmt.Errorf("claiming output pin %d: %w", index, err)
            }
            physical[index] = NewPhysicalPin(line)
        }
        for index := range pins.GetWhitelist {
            if pins.SetWhitelist.Contains(index) {
                continue
            }
            line, err := provider.OpenInput(index)
            if err != nil {
                return nil, fmt.Errorf("claiming input pin %d: %w", index, err)
            }
            physical[index] = NewPhysicalPin(line)
        }
    }

    simulated := make(map[PinIndex]*SimulatedPin)
    for index := range pins.SetSimulated {
        simulated[index] = NewSimulatedPin()
    }
    // A simulated get pin defers to a physical pin claimed for sets at the
    // same index.  The check is against the physical set whitelist, not the
    // simulated one.
    for index := range pins.GetSimulated {
        if pins.SetWhitelist.Contains(index) {
            continue
        }
        if _, ok := simulated[index]; !ok {
            simulated[index] = NewSimulatedPin()
        }
    }

    return &Registry{pins: pins, physical: physical, simulated: simulated}, nil
}
