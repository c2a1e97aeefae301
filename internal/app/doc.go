// Package app loads configuration and wires application dependencies.
//
// Configuration is layered: built-in defaults, then <home>/config.toml, then
// STAKEPLUG_* environment variables, then command-line flags. NewWire builds
// the concrete stores, services and host client from the result.
package app
