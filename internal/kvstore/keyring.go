package kvstore

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringService is the default keychain service name.
const KeyringService = "vibefuse"

// Keyring implements Store on the OS keychain. Values are stored as the
// secret of an item named after the key.
type Keyring struct {
	service string
}

// NewKeyring returns a keychain store for service, or KeyringService when
// service is empty.
func NewKeyring(service string) *Keyring {
	if service == "" {
		service = KeyringService
	}
	return &Keyring{service: service}
}

// Get returns the secret stored under key.
func (k *Keyring) Get(key string) ([]byte, bool, error) {
	secret, err := keyring.Get(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kvstore: keyring read failed: %w", err)
	}
	return []byte(secret), true, nil
}

// Set replaces the secret stored under key.
func (k *Keyring) Set(key string, value []byte) error {
	if err := keyring.Set(k.service, key, string(value)); err != nil {
		return fmt.Errorf("kvstore: keyring write failed: %w", err)
	}
	return nil
}

func (k *Keyring) Close() error { return nil }
