// Package commands defines the numerix CLI: key generation, RSA
// encryption and decryption of text files, and ElGamal signing and
// verification of messages.
package commands
