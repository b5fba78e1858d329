package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinBcryptCost = 4
	MaxBcryptCost = 15

	saltBytes = 16
)

// Credentials is what gets persisted for a password. Salt is kept for
// auditing only; bcrypt carries its own salt inside Hash.
type Credentials struct {
	Hash string
	Salt string
}

func ClampBcryptCost(cost int) int {
	if cost < MinBcryptCost {
		return MinBcryptCost
	}
	if cost > MaxBcryptCost {
		return MaxBcryptCost
	}
	return cost
}

// HashPassword returns a bcrypt hash at the clamped cost plus a random salt.
func HashPassword(password string, cost int) (Credentials, error) {
	salt, err := RandomHex(saltBytes)
	if err != nil {
		return Credentials{}, fmt.Errorf("generate salt: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), ClampBcryptCost(cost))
	if err != nil {
		return Credentials{}, fmt.Errorf("hash password: %w", err)
	}

	return Credentials{Hash: string(hash), Salt: salt}, nil
}

// CheckPasswordHash reports whether password matches hash. Empty or
// malformed hashes never match.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
