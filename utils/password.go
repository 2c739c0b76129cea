package utils

import (
	"sync"

	"github.com/matthewhartstonge/argon2"
)

func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// VerifyDummyPassword performs the same argon2 work as VerifyPassword
// against a throwaway hash. Used when a login names an unknown user.
func VerifyDummyPassword(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = HashPassword("dummy-password-for-unknown-users")
	})
	if dummyHash != "" {
		_, _ = VerifyPassword(dummyHash, password)
	}
}
