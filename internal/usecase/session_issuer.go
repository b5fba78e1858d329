package usecase

import (
	"fmt"
	"time"

	"secure-it/internal/data/entity"
	"secure-it/pkg/utils"
)

// SessionOverrides lets callers pin parts of an issued session. Zero fields
// are ignored.
type SessionOverrides struct {
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
	Provider  string
}

type SessionIssuer struct {
	now      func() time.Time
	newToken func() (string, error)
}

func NewSessionIssuer() *SessionIssuer {
	return &SessionIssuer{
		now:      time.Now,
		newToken: utils.GenerateSessionToken,
	}
}

// Issue builds a bearer session for customer. Nothing is stored; expiry is
// advisory and left to whoever consumes the token.
func (si *SessionIssuer) Issue(customer *entity.Customer, ttlHours int, overrides *SessionOverrides) (*entity.Session, error) {
	if overrides == nil {
		overrides = &SessionOverrides{}
	}
	if ttlHours < 1 {
		ttlHours = 1
	}

	createdAt := overrides.CreatedAt
	if createdAt.IsZero() {
		createdAt = si.now()
	}
	createdAt = createdAt.UTC().Truncate(time.Second)

	expiresAt := overrides.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = createdAt.Add(time.Duration(ttlHours) * time.Hour)
	}
	expiresAt = expiresAt.UTC().Truncate(time.Second)

	token := overrides.Token
	if token == "" {
		var err error
		token, err = si.newToken()
		if err != nil {
			return nil, fmt.Errorf("generate session token: %w", err)
		}
	}

	var provider *string
	if p := customer.ProviderName(); p != "" {
		provider = &p
	} else if overrides.Provider != "" {
		p := overrides.Provider
		provider = &p
	}

	return &entity.Session{
		Token:     token,
		Customer:  customer.Profile(),
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
		Provider:  provider,
	}, nil
}

var defaultIssuer = NewSessionIssuer()

// IssueSession issues a session with the wall clock and a crypto/rand token.
func IssueSession(customer *entity.Customer, ttlHours int, overrides *SessionOverrides) (*entity.Session, error) {
	return defaultIssuer.Issue(customer, ttlHours, overrides)
}
