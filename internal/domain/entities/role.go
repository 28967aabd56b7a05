package entities

import "strings"

// Role gates which workflow actions a user may perform.
//
//   - operador: orders analyst
//   - gestor:   strategy analyst
//   - admin:    strategy analyst with administrative rights
type Role string

const (
	RoleOperador Role = "operador"
	RoleGestor   Role = "gestor"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOperador, RoleGestor, RoleAdmin:
		return true
	}
	return false
}

// ParseRole normalizes a role name. The second value is false for unknown roles.
func ParseRole(v string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(v)))
	return r, r.Valid()
}

// RoleFromEmail derives the role the identity provider assigns by convention:
// a "+admin" or "+gestor" tag in the local part, operador otherwise.
func RoleFromEmail(email string) Role {
	email = strings.ToLower(email)
	switch {
	case strings.Contains(email, "+admin"):
		return RoleAdmin
	case strings.Contains(email, "+gestor"):
		return RoleGestor
	default:
		return RoleOperador
	}
}

// Actor is the authenticated user performing an operation.
type Actor struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
