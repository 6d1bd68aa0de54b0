package domain

import "strings"

// Role distinguishes administrators, who see every operator's routes, from operators.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

type Operator struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (o *Operator) IsAdmin() bool {
	return o != nil && o.Role == RoleAdmin
}

// Owns reports whether the operator may plan a route assigned to email.
func (o *Operator) Owns(email string) bool {
	if o == nil {
		return false
	}
	if o.IsAdmin() {
		return true
	}
	return NormalizeEmail(o.Email) == NormalizeEmail(email)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
