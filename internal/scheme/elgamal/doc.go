// Package elgamal implements textbook ElGamal digital signatures over a
// safe-prime group.
//
// Signing hashes the message with SHA-256 and commits to a fresh random
// nonce per call, so two signatures over the same message differ yet
// both verify. Verification is a pure predicate: a bad signature is a
// false result, never an error. As with the rsa package, there is no
// side-channel hardening.
package elgamal
