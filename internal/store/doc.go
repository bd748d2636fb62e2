// Package store persists key pairs as encrypted JSON files under the
// numerix home directory. Private material is sealed with a passphrase
// envelope: scrypt derives the key, chacha20poly1305 seals the record.
package store
