package entity

import "strings"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleLoyalty Role = "loyalty"
	RoleBasic   Role = "basic"
)

var roleAliases = map[string]Role{
	"admin":             RoleAdmin,
	"staff":             RoleStaff,
	"loyalty":           RoleLoyalty,
	"loyalty_customer":  RoleLoyalty,
	"loyalty-customers": RoleLoyalty,
	"basic":             RoleBasic,
	"customer":          RoleBasic,
	"basic customer":    RoleBasic,
}

// RoleCodes maps a role to the access code that unlocks it at signup.
type RoleCodes map[Role]string

func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleStaff
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleLoyalty, RoleBasic:
		return true
	}
	return false
}

// ParseRole maps free text onto the closed role set. Unknown input yields
// fallback (or basic when fallback itself is not a valid role).
func ParseRole(value string, fallback Role) Role {
	if role, ok := roleAliases[strings.ToLower(strings.TrimSpace(value))]; ok {
		return role
	}
	if !fallback.Valid() {
		return RoleBasic
	}
	return fallback
}

// ResolveRole picks the role granted at signup. A matching access code wins
// over the requested role; privileged roles are never granted without one.
func ResolveRole(requested, accessCode string, codes RoleCodes, defaultRole Role) Role {
	if !defaultRole.Valid() {
		defaultRole = RoleBasic
	}

	code := strings.ToLower(strings.TrimSpace(accessCode))
	if code != "" {
		for _, role := range []Role{RoleAdmin, RoleStaff, RoleLoyalty, RoleBasic} {
			configured := strings.ToLower(strings.TrimSpace(codes[role]))
			if configured != "" && configured == code {
				return role
			}
		}
	}

	if strings.TrimSpace(requested) == "" {
		return defaultRole
	}

	role := ParseRole(requested, defaultRole)
	if role.IsPrivileged() {
		return defaultRole
	}
	return role
}
