// Package rsa implements textbook RSA: unpadded modular exponentiation
// over sequences of integers. It intentionally omits OAEP/PSS and
// constant-time hardening; the scheme is for study, not production use.
package rsa
