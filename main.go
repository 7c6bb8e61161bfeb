package main

import (
    "flag"
    "log"
)

// Entry point for the GPIO control service.
func main() {
    gets := flag.String("gets", "", "whitelist of GPIO pin numbers to allow getting of state")
    sets := flag.String("sets", "", "whitelist of GPIO pin numbers to allow setting of state")
    simGets := flag.String("simgets", "", "simulated gettable pins; real pins of the same index take priority")
    simSets := flag.String("simsets", "", "simulated settable pins; real pins of the same index take priority")
    address := flag.String("address", "0.0.0.0", "IP address which to bind the server to")
    port := flag.String("port", "8080", "listening port for the server")
    logFile := flag.String("logfile", "", "optional file to append per-request event lines to")
    flag.Parse()

    getWhitelist, err := parsePinList(*gets)
    if err != nil {
        log.Fatalf("error parsing gets list: %v", err)
    }
    setWhitelist, err := parsePinList(*sets)
    if err != nil {
        log.Fatalf("error parsing sets list: %v", err)
    }
    getSimulated, err := parsePinList(*simGets)
    if err != nil {
        log.Fatalf("error parsing simulated gets list: %v", err)
    }
    setSimulated, err := parsePinList(*simSets)
    if err != nil {
        log.Fatalf("error parsing simulated sets list: %v", err)
    }

    pins := PinSet{
        GetWhitelist: getWhitelist,
        SetWhitelist: setWhitelist,
        GetSimulated: getSimulated,
        SetSimulated: setSimulated,
    }

    var logger *EventLogger
    if *logFile != "" {
        logger, err = NewEventLogger(*logFile)
        if err != nil {
            log.Fatalf("failed to open event log: %v", err)
        }
    }

    server, err := NewServer(pins, *address+":"+*port, logger)
    if err != nil {
        log.Fatalf("initialisation error: %v", err)
    }
    if err := server.Start(); err != nil {
        log.Fatalf("server exited: %v", err)
    }
}
