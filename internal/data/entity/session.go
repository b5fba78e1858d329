package entity

import "time"

// Session is a bearer session handed back to the client once. Nothing is
// stored server side.
type Session struct {
	Token     string          `json:"token"`
	Customer  CustomerProfile `json:"customer"`
	CreatedAt time.Time       `json:"createdAt"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Provider  *string         `json:"provider"`
}
