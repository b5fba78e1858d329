package response

import (
	"secure-it/internal/data/entity"
)

type CustomerResponse struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
	Provider *string     `json:"provider"`
}

type AuthResponse struct {
	OK       bool             `json:"ok"`
	Customer CustomerResponse `json:"customer"`
	Session  *entity.Session  `json:"session"`
}

// Helper converters
func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	profile := customer.Profile()
	return CustomerResponse{
		ID:       profile.ID,
		Name:     profile.Name,
		Email:    profile.Email,
		Role:     profile.Role,
		Provider: customer.Provider,
	}
}

func AuthToResponse(customer *entity.Customer, session *entity.Session) AuthResponse {
	return AuthResponse{
		OK:       true,
		Customer: CustomerToResponse(customer),
		Session:  session,
	}
}
