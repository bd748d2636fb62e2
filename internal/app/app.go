package app

import (
	crand "crypto/rand"
	"io"

	"numerix/internal/domain"
	"numerix/internal/numtheory"
	"numerix/internal/store"
)

// App bundles the dependencies the commands run against.
type App struct {
	Keyring domain.Keyring
	Rand    io.Reader
	Finder  numtheory.GeneratorFinder
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	random := cfg.Rand
	if random == nil {
		random = crand.Reader
	}
	var finder numtheory.GeneratorFinder = numtheory.LinearScan{}
	if cfg.Random {
		finder = numtheory.RandomWalk{Rand: random}
	}
	return &App{
		Keyring: store.NewFileStore(cfg.Home),
		Rand:    random,
		Finder:  finder,
	}
}
