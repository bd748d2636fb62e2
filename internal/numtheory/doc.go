// Package numtheory implements the arithmetic that the RSA and ElGamal
// schemes are built on.
//
// Contents
//
//   - Modular exponentiation by squaring (ModExp)
//   - Miller-Rabin probabilistic primality testing (IsPrime)
//   - Extended Euclidean algorithm and modular inverses (ExtendedGCD,
//     ModInverse)
//   - Large prime, safe prime and group generator discovery
//     (GeneratePrime, GenerateSafePrime, LinearScan, RandomWalk)
//
// All functions operate on math/big integers and never mutate their
// arguments. Randomized operations take an io.Reader so tests can inject
// a deterministic source; production callers pass crypto/rand.Reader.
package numtheory
