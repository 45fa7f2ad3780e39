// Package keyring stores the Farcaster API credentials and the optional
// PostgreSQL connection string in the OS keyring so they never land in the
// config directory or shell history.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"castlog/internal/constants"
)

var (
	// ErrNotFound is returned when no credential is stored in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func get(user string) (string, error) {
	value, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return value, nil
}

func set(user, value string) error {
	if value == "" {
		return errors.New("credential cannot be empty")
	}
	if err := keyring.Set(constants.AppName, user, value); err != nil {
		return fmt.Errorf("failed to store credential in keyring: %w", err)
	}
	return nil
}

func del(user string) error {
	err := keyring.Delete(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credential from keyring: %w", err)
	}
	return nil
}

// GetAPIKey retrieves the Neynar API key.
func GetAPIKey() (string, error) {
	return get(constants.KeyringAPIKeyUser)
}

// SetAPIKey stores the Neynar API key.
func SetAPIKey(key string) error {
	return set(constants.KeyringAPIKeyUser, key)
}

// GetSignerUUID retrieves the signer UUID used to publish casts.
func GetSignerUUID() (string, error) {
	return get(constants.KeyringSignerUUIDUser)
}

// SetSignerUUID stores the signer UUID.
func SetSignerUUID(id string) error {
	return set(constants.KeyringSignerUUIDUser, id)
}

// GetConnectionString retrieves the PostgreSQL connection string.
func GetConnectionString() (string, error) {
	return get(constants.KeyringPostgresUser)
}

// SetConnectionString stores the PostgreSQL connection string.
func SetConnectionString(connStr string) error {
	return set(constants.KeyringPostgresUser, connStr)
}

// DeleteAll removes every stored credential. Missing entries are ignored.
func DeleteAll() error {
	for _, user := range []string{
		constants.KeyringAPIKeyUser,
		constants.KeyringSignerUUIDUser,
		constants.KeyringPostgresUser,
	} {
		if err := del(user); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
