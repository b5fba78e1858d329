package entity

import "strings"

const DefaultProvider = "google"

type Customer struct {
	Base
	Name         string  `db:"full_name"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	Salt         string  `db:"salt"`
	Role         Role    `db:"role"`
	Provider     *string `db:"provider"`
}

// CustomerProfile is the credential-free projection handed to clients.
type CustomerProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Profile strips hash and salt and re-normalizes the stored role.
func (c *Customer) Profile() CustomerProfile {
	return CustomerProfile{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Role:  ParseRole(string(c.Role), RoleBasic),
	}
}

// ProviderName returns the linked provider or "" for password accounts.
func (c *Customer) ProviderName() string {
	if c.Provider == nil {
		return ""
	}
	return *c.Provider
}

// NormalizeEmail is the lookup key form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeProvider trims and lowercases a provider name, falling back to
// DefaultProvider when nothing was supplied.
func NormalizeProvider(provider string) string {
	p := strings.ToLower(strings.TrimSpace(provider))
	if p == "" {
		return DefaultProvider
	}
	return p
}
