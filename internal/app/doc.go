// Package app wires application dependencies for the CLI.
//
// It builds the key store and picks the random source and generator
// discovery strategy from Config, exposing them via the App struct for
// commands to use.
package app
