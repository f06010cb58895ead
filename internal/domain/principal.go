package domain

// Role gates the HTTP API when authentication is enabled.
type Role string

const (
	// RoleAdmin manages depreciation policies.
	RoleAdmin Role = "admin"
	// RoleAccountant creates, revalues and scraps assets.
	RoleAccountant Role = "accountant"
	// RoleViewer reads assets and reports.
	RoleViewer Role = "viewer"
)

var roleRank = map[Role]int{
	RoleViewer:     1,
	RoleAccountant: 2,
	RoleAdmin:      3,
}

// ParseRole validates s as a known role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleRank[r]; !ok {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Allows reports whether r grants at least min.
func (r Role) Allows(min Role) bool {
	return roleRank[r] >= roleRank[min] && roleRank[r] > 0
}

// Principal is the authenticated caller of an API request.
type Principal struct {
	Subject string
	Role    Role
}
