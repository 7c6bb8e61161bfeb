package main

import (
    "fmt"

    "github.com/BurntSushi/toml"
)

// Config mirrors the launcher's TOML file.  Both tables and every key inside
// them are optional: only keys present in the file are forwarded to the
// service, so absent keys fall back to the service's own flag defaults.
type Config struct {
    Network *Network `toml:"network"`
    Board   *Board   `toml:"board"`
}

// Network selects the bind address and port.
type Network struct {
    Address *string `toml:"address"`
    Port    *string `toml:"port"`
}

// Board carries the four pin whitelists as comma-separated lists.
type Board struct {
    Gets    *string `toml:"gets"`
    Sets    *string `toml:"sets"`
    SimGets *string `toml:"simgets"`
    SimSets *string `toml:"simsets"`
}

// loadConfig reads and decodes the TOML configuration file.
func loadConfig(path string) (Config, error) {
    var cfg Config
    if _, err := toml.DecodeFile(path, &cfg); err != nil {
        return Config{}, fmt.Errorf("unable to read %q: %w", path, err)
    }
    return cfg, nil
}

// buildArgs translates the present config keys into service flags.
func buildArgs(cfg Config) []string {
    var args []string
    appendArg := func(name string, value *string) {
        if value != nil {
            args = append(args, name, *value)
        }
    }
    if cfg.Network != nil {
        appendArg("-address", cfg.Network.Address)
        appendArg("-port", cfg.Network.Port)
    }
    if cfg.Board != nil {
        appendArg("-gets", cfg.Board.Gets)
        appendArg("-sets", cfg.Board.Sets)
        appendArg("-simgets", cfg.Board.SimGets)
        appendArg("-simsets", cfg.Board.SimSets)
    }
    return args
}
