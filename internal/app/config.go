package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home   string    // key directory, e.g. $HOME/.numerix
	Rand   io.Reader // optional; defaults to crypto/rand.Reader
	Random bool      // use random-walk generator discovery instead of linear scan
}
