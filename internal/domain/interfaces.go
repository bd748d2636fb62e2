package domain

// Keyring persists key pairs, sealed under a passphrase.
type Keyring interface {
	SaveRSA(passphrase string, key RSAKey) error
	LoadRSA(passphrase string) (RSAKey, error)

	SaveElGamal(passphrase string, key ElGamalKey) error
	LoadElGamal(passphrase string) (ElGamalKey, error)
}
