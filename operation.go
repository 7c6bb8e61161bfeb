package main

import (
    "errors"
    "fmt"
    "net/url"
    "strconv"
)

// Query parameter names and values recognised by the service.
const (
    pinParam   = "pin"
    opParam    = "op"
    levelParam = "level"

    opGetValue     = "get"
    opSetValue     = "set"
    levelHighValue = "high"
    levelLowValue  = "low"
)

// OpKind selects between the two request operations.
type OpKind int

const (
    OpGet OpKind = iota
    OpSet
)

// Operation is one decoded request: which pin to address, and whether to read
// it or drive it to Level.  Level is meaningful only when Kind is OpSet.
type Operation struct {
    Pin   PinIndex
    Kind  OpKind
    Level Level
}

// parseOperation decodes a request URL into an Operation.  The contract is
// fail-closed: an unrecognised query key rejects the whole request rather
// than being ignored, so a misspelled parameter can never silently change
// meaning.  A repeated key keeps its last value.  A level supplied alongside
// op=get is accepted and ignored.
func parseOperation(u *url.URL) (Operation, error) {
    if u.RawQuery == "" {
        return Operation{}, errors.New("No arguments in URL.")
    }
    values, err := url.ParseQuery(u.RawQuery)
    if err != nil {
        return Operation{}, fmt.Errorf("Malformed query string: %v", err)
    }

    var pinStr, opStr, levelStr *string
    for key, vals := range values {
        value := vals[len(vals)-1]
        switch key {
        case pinParam:
            pinStr = &value
        case opParam:
            opStr = &value
        case levelParam:
            levelStr = &value
        default:
            return Operation{}, fmt.Errorf("Unrecognized query parameter: %q", key)
        }
    }

    if pinStr == nil {
        return Operation{}, errors.New("Did not get required GPIO index argument.")
    }
    index, err := strconv.ParseUint(*pinStr, 10, 8)
    if err != nil {
        return Operation{}, fmt.Errorf("Could not parse %q as a pin index.", *pinStr)
    }
    pin := PinIndex(index)

    if opStr == nil {
        return Operation{}, errors.New("Did not get required operation argument.")
    }
    switch *opStr {
    case opGetValue:
        return Operation{Pin: pin, Kind: OpGet}, nil
    case opSetValue:
        if levelStr == nil {
            return Operation{}, errors.New("Did not get level argument required for set.")
        }
        switch *levelStr {
        case levelHighValue:
            return Operation{Pin: pin, Kind: OpSet, Level: High}, nil
        case levelLowValue:
            return Operation{Pin: pin, Kind: OpSet, Level: Low}, nil
        default:
            return Operation{}, fmt.Errorf("Unrecognized level parameter: %q", *levelStr)
        }
    default:
        return Operation{}, fmt.Errorf("Unrecognized operation parameter: %q", *opStr)
    }
}
