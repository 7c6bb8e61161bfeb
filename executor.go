package main

import "fmt"

// Outcome is the result of one successfully executed Operation.  It is
// consumed immediately by the response encoder and never retained.
type Outcome struct {
    Kind  OpKind
    Pin   PinIndex
    Level Level // read result, meaningful only for get outcomes
}

// executeOperation resolves the operation's pin and performs the read or
// write.  A physical pin always wins over a simulated pin at the same index,
// and the whitelist pair consulted is the resolved backend's own, so an index
// can resolve physically yet still be rejected for the requested direction.
// A successful execution touches the pin exactly once; failures touch it not
// at all.
func executeOperation(op Operation, reg *Registry) (Outcome, error) {
    if pin, ok := reg.physical[op.Pin]; ok {
        return performPinIO(op, pin, reg.pins.GetWhitelist, reg.pins.SetWhitelist)
    }
    if pin, ok := reg.simulated[op.Pin]; ok {
        return performPinIO(op, pin, reg.pins.GetSimulated, reg.pins.SetSimulated)
    }
    return Outcome{}, fmt.Errorf("Could not find pin %d in either map.", op.Pin)
}

func performPinIO(op Operation, pin DiscreteIO, getWhitelist, setWhitelist PinIndexSet) (Outcome, error) {
    switch op.Kind {
    case OpSet:
        if !setWhitelist.Contains(op.Pin) {
            return Outcome{}, fmt.Errorf("Pin, %d, is not in the set whitelist for this pin type!", op.Pin)
        }
        pin.SetState(op.Level)
        return Outcome{Kind: OpSet, Pin: op.Pin}, nil
    default:
        if !getWhitelist.Contains(op.Pin) {
            return Outcome{}, fmt.Errorf("Pin, %d, is not in the get whitelist for this pin type!", op.Pin)
        }
        return Outcome{Kind: OpGet, Pin: op.Pin, Level: pin.GetState()}, nil
    }
}
