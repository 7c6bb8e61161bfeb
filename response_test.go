package main

import (
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestEncodeGetOutcome(t *testing.T) {
    body := encodeOutcome(Outcome{Kind: OpGet, Pin: 2, Level: High})
    assert.Equal(t, `{"level":"high","operation":"get","pin":"2","status":"success"}`, string(body))

    body = encodeOutcome(Outcome{Kind: OpGet, Pin: 17, Level: Low})
    assert.Equal(t, `{"level":"low","operation":"get","pin":"17","status":"success"}`, string(body))
}

func TestEncodeSetOutcome(t *testing.T) {
    body := encodeOutcome(Outcome{Kind: OpSet, Pin: 2})
    assert.Equal(t, `{"operation":"set","pin":"2","status":"success"}`, string(body))
}

func TestEncodeError(t *testing.T) {
    body := encodeError(errors.New("No arguments in URL."))
    assert.Equal(t, `{"error":"No arguments in URL."}`, string(body))
}

func TestEncodeDeterministic(t *testing.T) {
    out := Outcome{Kind: OpGet, Pin: 7, Level: High}
    first := encodeOutcome(out)
    for i := 0; i < 10; i++ {
        assert.Equal(t, first, encodeOutcome(out))
    }
}
