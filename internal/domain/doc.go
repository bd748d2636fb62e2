// Package domain holds the serialized key records shared between the
// schemes, the store and the CLI, plus the interfaces the app wires
// against.
package domain
