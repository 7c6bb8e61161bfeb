package main

import "sync"

// Level is the logical state of a digital line.  Only two levels exist; no
// floating or unknown state is representable.
type Level bool

const (
    Low  Level = false
    High Level = true
)

// String returns the wire representation used in query parameters and
// response bodies.
func (l Level) String() string {
    if l == High {
        return "high"
    }
    return "low"
}

// DiscreteIO is the uniform pin capability the executor operates through.
// Reads never fail and writes signal no errors; writing the current level is
// a no-op.  Implementations must be safe to call from independent request
// handlers concurrently; simultaneous writes to one pin race only on which
// level lands last.
type DiscreteIO interface {
    GetState() Level
    SetState(Level)
}

// SimulatedPin is an in-memory stand-in for a hardware line, used for testing
// a deployment without wiring anything up.  It starts Low.
type SimulatedPin struct {
    mu    sync.Mutex
    level Level
}

// NewSimulatedPin creates a simulated pin at Low.
func NewSimulatedPin() *SimulatedPin {
    return &SimulatedPin{}
}

func (p *SimulatedPin) GetState() Level {
    p.mu.Lock()
    defer p.mu.Unlock()
    return p.level
}

func (p *SimulatedPin) SetState(l Level) {
    p.mu.Lock()
    p.level = l
    p.mu.Unlock()
}

// PhysicalPin adapts a claimed hardware line to DiscreteIO.  The line was
// configured as input or output when the registry claimed it and is owned
// exclusively by this pin afterwards; all access goes through the mutex so
// concurrent requests never interleave on the line.
type PhysicalPin struct {
    mu   sync.Mutex
    line HardwareLine
}

// NewPhysicalPin wraps an already-configured hardware line.
func NewPhysicalPin(line HardwareLine) *PhysicalPin {
    return &PhysicalPin{line: line}
}

func (p *PhysicalPin) GetState() Level {
    p.mu.Lock()
    defer p.mu.Unlock()
    if p.line.IsHigh() {
        return High
    }
    return Low
}

func (p *PhysicalPin) SetState(l Level) {
    p.mu.Lock()
    defer p.mu.Unlock()
    if l == High {
        p.line.DriveHigh()
    } else {
        p.line.DriveLow()
    }
}
