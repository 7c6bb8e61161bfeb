package main

import (
    "log"
    "os"
    "os/exec"
)

// The launcher starts the GPIO control service with flags derived from a TOML
// configuration file.  It contributes nothing to pin semantics: it spawns the
// service binary, forwards its output streams, and reports its exit status.
func main() {
    if len(os.Args) < 3 {
        log.Fatal("provide path to the service executable as first argument and configuration file as second argument")
    }
    executable := os.Args[1]
    configPath := os.Args[2]

    cfg, err := loadConfig(configPath)
    if err != nil {
        log.Fatalf("configuration error: %v", err)
    }

    cmd := exec.Command(executable, buildArgs(cfg)...)
    cmd.Stdout = os.Stdout
    cmd.Stderr = os.Stderr
    if err := cmd.Run(); err != nil {
        log.Fatalf("service exited: %v", err)
    }
}
