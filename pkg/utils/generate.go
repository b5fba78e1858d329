package utils

import (
	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

const sessionTokenBytes = 32

func GenerateUUIDString() string {
	return uuid.New().String()
}

// GenerateSessionToken returns 32 random bytes, hex encoded.
func GenerateSessionToken() (string, error) {
	return RandomHex(sessionTokenBytes)
}

// GenerateThrowawayPassword is used for provider accounts, which never log in
// with a password.
func GenerateThrowawayPassword() (string, error) {
	return RandomHex(24)
}
