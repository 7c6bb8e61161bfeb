package main

import (
    "encoding/json"
    "strconv"
)

// encodeOutcome renders a successful outcome as a flat JSON object.  Staging
// the fields in a map and letting encoding/json marshal it keeps the keys in
// lexicographic order, so responses are byte-for-byte deterministic.
func encodeOutcome(out Outcome) []byte {
    fields := map[string]string{
        "status": "success",
        "pin":    strconv.Itoa(int(out.Pin)),
    }
    if out.Kind == OpSet {
        fields["operation"] = opSetValue
    } else {
        fields["operation"] = opGetValue
        fields["level"] = out.Level.String()
    }
    // Marshalling a map of strings cannot fail.
    body, _ := json.Marshal(fields)
    return body
}

// encodeError renders a failure reason.  Malformed and rejected requests get
// a JSON body just like successful ones; the transport status code stays 200.
func encodeError(err error) []byte {
    body, _ := json.Marshal(map[string]string{"error": err.Error()})
    return body
}
