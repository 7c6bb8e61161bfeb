package main

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func mustRegistry(t *testing.T, provider *fakeProvider, gets, sets, simGets, simSets string) *Registry {
    t.Helper()
    reg, err := NewRegistry(mustPinSet(t, gets, sets, simGets, simSets), provider)
    require.NoError(t, err)
    return reg
}

func TestExecuteGetAndSetOnPhysicalPins(t *testing.T) {
    provider := newFakeProvider()
    reg := mustRegistry(t, provider, "1,2", "2", "", "")

    // Fresh pins read Low.
    out, err := executeOperation(Operation{Pin: 1, Kind: OpGet}, reg)
    require.NoError(t, err)
    assert.Equal(t, Outcome{Kind: OpGet, Pin: 1, Level: Low}, out)

    // Pin 1 is gettable but not settable.
    _, err = executeOperation(Operation{Pin: 1, Kind: OpSet, Level: High}, reg)
    require.Error(t, err)
    assert.Equal(t, "Pin, 1, is not in the set whitelist for this pin type!", err.Error())
    assert.False(t, provider.lines[1].high, "a rejected set must not touch the pin")

    // Pin 2 can be driven and read back.
    out, err = executeOperation(Operation{Pin: 2, Kind: OpSet, Level: High}, reg)
    require.NoError(t, err)
    assert.Equal(t, Outcome{Kind: OpSet, Pin: 2}, out)

    out, err = executeOperation(Operation{Pin: 2, Kind: OpGet}, reg)
    require.NoError(t, err)
    assert.Equal(t, High, out.Level)
}

func TestExecuteNotFound(t *testing.T) {
    // Index 9 is whitelisted for gets, but without a set whitelist no
    // physical pins exist, so resolution falls through to not-found rather
    // than a whitelist failure.
    provider := newFakeProvider()
    reg := mustRegistry(t, provider, "9", "", "", "")

    _, err := executeOperation(Operation{Pin: 9, Kind: OpGet}, reg)
    require.Error(t, err)
    assert.Equal(t, "Could not find pin 9 in either map.", err.Error())
}

func TestExecutePhysicalPrecedence(t *testing.T) {
    // Index 2 exists in both maps; operations must land on the physical pin
    // and leave the simulated one untouched.
    provider := newFakeProvider()
    reg := mustRegistry(t, provider, "1", "2", "", "2")

    _, err := executeOperation(Operation{Pin: 2, Kind: OpSet, Level: High}, reg)
    require.NoError(t, err)
    assert.True(t, provider.lines[2].high)
    assert.Equal(t, Low, reg.simulated[2].GetState())
}

func TestExecuteSimulatedWhitelists(t *testing.T) {
    provider := newFakeProvider()
    reg := mustRegistry(t, provider, "", "", "3", "4")

    out, err := executeOperation(Operation{Pin: 3, Kind: OpGet}, reg)
    require.NoError(t, err)
    assert.Equal(t, Low, out.Level)

    _, err = executeOperation(Operation{Pin: 3, Kind: OpSet, Level: High}, reg)
    require.Error(t, err)
    assert.Equal(t, "Pin, 3, is not in the set whitelist for this pin type!", err.Error())

    _, err = executeOperation(Operation{Pin: 4, Kind: OpSet, Level: High}, reg)
    require.NoError(t, err)
    assert.Equal(t, High, reg.simulated[4].GetState())

    // Simulated-settable does not imply simulated-gettable.
    _, err = executeOperation(Operation{Pin: 4, Kind: OpGet}, reg)
    require.Error(t, err)
    assert.Equal(t, "Pin, 4, is not in the get whitelist for this pin type!", err.Error())
}
