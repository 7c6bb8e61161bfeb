package main

import (
    "fmt"
    "log"
    "net/http"
)

// Server holds the shared state for the HTTP pin service.  The registry is
// read-only once built; only the levels stored in individual pins mutate at
// runtime, so requests share it without locking.
type Server struct {
    registry *Registry
    logger   *EventLogger // nil when no event log was configured
    addr     string
}

// NewServer builds the pin registry from the configured whitelists.  Hardware
// lines are claimed here, so acquisition failures surface before the listener
// ever starts accepting requests.
func NewServer(pins PinSet, addr string, logger *EventLogger) (*Server, error) {
    registry, err := NewRegistry(pins, newLineProvider())
    if err != nil {
        return nil, err
    }
    return &Server{registry: registry, logger: logger, addr: addr}, nil
}

// Start launches the HTTP server.  It blocks until the server shuts down.
func (s *Server) Start() error {
    mux := http.NewServeMux()
    mux.HandleFunc("/", s.handlePin)
    log.Printf("Listening on http://%s\n", s.addr)
    return http.ListenAndServe(s.addr, mux)
}

// handlePin runs the full pipeline for one request: decode the query into an
// operation, execute it against the registry, encode the outcome.  Every
// request gets an HTTP 200 with a JSON body; failures are reported through an
// "error" field, never a status code.
func (s *Server) handlePin(w http.ResponseWriter, r *http.Request) {
    var body []byte
    op, err := parseOperation(r.URL)
    if err == nil {
        var out Outcome
        out, err = executeOperation(op, s.registry)
        if err != nil {
            err = fmt.Errorf("Failed to perform board operation: %q", err.Error())
        } else {
            body = encodeOutcome(out)
            s.logEvent(out)
        }
    }
    if err != nil {
        body = encodeError(err)
        if s.logger != nil {
            s.logger.Log("%s rejected: %v", r.RemoteAddr, err)
        }
    }
    w.Header().Set("Content-Type", "application/json")
    _, _ = w.Write(body)
}

// logEvent records a completed operation when audit logging is enabled.
func (s *Server) logEvent(out Outcome) {
    if s.logger == nil {
        return
    }
    if out.Kind == OpSet {
        s.logger.Log("set pin %d", out.Pin)
    } else {
        s.logger.Log("get pin %d -> %s", out.Pin, out.Level)
    }
}
