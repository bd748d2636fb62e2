package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"numerix/internal/domain"
)

const (
	rsaKeyFile     = "rsa_key.enc"
	elgamalKeyFile = "elgamal_key.enc"
)

// ErrNoKey is returned when a key pair has not been generated yet.
var ErrNoKey = errors.New("no key pair stored; run keygen first")

// FileStore keeps sealed key records in a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) SaveRSA(passphrase string, key domain.RSAKey) error {
	return s.save(passphrase, rsaKeyFile, key)
}

func (s *FileStore) LoadRSA(passphrase string) (domain.RSAKey, error) {
	var key domain.RSAKey
	err := s.load(passphrase, rsaKeyFile, &key)
	return key, err
}

func (s *FileStore) SaveElGamal(passphrase string, key domain.ElGamalKey) error {
	return s.save(passphrase, elgamalKeyFile, key)
}

func (s *FileStore) LoadElGamal(passphrase string) (domain.ElGamalKey, error) {
	var key domain.ElGamalKey
	err := s.load(passphrase, elgamalKeyFile, &key)
	return key, err
}

func (s *FileStore) save(passphrase, file string, record any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	blob, err := seal(passphrase, raw)
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(s.dir, file), blob, 0o600)
}

func (s *FileStore) load(passphrase, file string, record any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, file))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", file, ErrNoKey)
	}
	if err != nil {
		return err
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, record)
}

// writeAtomic writes via a temp file then rename so a crash never leaves
// a half-written key file behind.
func writeAtomic(path string, b []byte, mode os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Compile-time assertion that FileStore implements domain.Keyring.
var _ domain.Keyring = (*FileStore)(nil)
