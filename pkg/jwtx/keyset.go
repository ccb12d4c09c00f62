package jwtx

import (
	"crypto"
	"errors"
	"sync"
)

// KeySet is a threadsafe kid -> public key map. Keys come from a JWKS
// document (see FetchJWKS) or are registered directly in tests.
type KeySet struct {
	mu   sync.RWMutex
	keys map[string]crypto.PublicKey
}

// NewKeySet creates an empty KeySet.
func NewKeySet() *KeySet {
	return &KeySet{keys: make(map[string]crypto.PublicKey)}
}

// Add registers a public key under the given kid, replacing any previous key.
func (ks *KeySet) Add(kid string, pub crypto.PublicKey) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.keys[kid] = pub
}

// Get returns the public key for the given kid.
func (ks *KeySet) Get(kid string) (crypto.PublicKey, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	pub, ok := ks.keys[kid]
	if !ok {
		return nil, ErrUnknownKID
	}
	return pub, nil
}

// Remove deletes the key for the given kid if present.
func (ks *KeySet) Remove(kid string) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	delete(ks.keys, kid)
}

// Kids returns the registered key IDs.
func (ks *KeySet) Kids() []string {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	kids := make([]string, 0, len(ks.keys))
	for kid := range ks.keys {
		kids = append(kids, kid)
	}
	return kids
}

// Replace swaps the whole key map in one shot. Used on JWKS refresh so a
// rotated-out key disappears atomically with its replacement appearing.
func (ks *KeySet) Replace(keys map[string]crypto.PublicKey) error {
	if keys == nil {
		return errors.New("jwtx: nil key map")
	}

	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.keys = keys
	return nil
}
