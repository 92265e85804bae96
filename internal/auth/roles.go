package auth

import "github.com/unimeet/unimeet-api/internal/domain"

// ManagerRoles are the roles allowed to create, update or cancel events.
var ManagerRoles = []domain.Role{domain.RoleManager, domain.RoleAdmin}

// RoleAllowed reports whether role is one of the allowed roles. It is the
// single capability check for mutating operations; services call it directly
// instead of relying on transport middleware.
func RoleAllowed(role domain.Role, allowed ...domain.Role) bool {
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}
	return false
}
