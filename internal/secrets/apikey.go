package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups the app's secrets in the OS keychain.
	KeyringService = "leadscout"
	keyringAccount = "linkedin-api-key"

	// EnvAPIKey is consulted when no --api-key flag is given.
	EnvAPIKey = "LINKEDIN_API_KEY"
)

// ErrNoAPIKey means no key was found via flag, environment, or
// keychain. Fatal configuration error for the caller.
var ErrNoAPIKey = errors.New("no API key: pass --api-key, set " + EnvAPIKey + ", or run `leadscout auth set`")

// ResolveAPIKey picks the key by precedence: flag > env > keychain.
func ResolveAPIKey(flagValue string) (string, error) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		return v, nil
	}
	if v, err := keyring.Get(KeyringService, keyringAccount); err == nil && strings.TrimSpace(v) != "" {
		return v, nil
	}
	return "", ErrNoAPIKey
}

func StoreAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, key)
}

func ClearAPIKey() error {
	return keyring.Delete(KeyringService, keyringAccount)
}
