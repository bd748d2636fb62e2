// Package codec maps printable text to the fixed-width decimal blocks
// the schemes operate on, and back. The crypto core itself only ever
// sees sequences of integers; this package is the bridge the CLI uses.
package codec
