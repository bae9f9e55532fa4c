// Package auth decides who may sign in and which routes a session may
// reach. The gate itself is a pure function; credential verification
// sits behind a port so the hardcoded table can be swapped for a real
// auth service later.
package auth

// Role identifies which protected routes a session may access.
type Role string

const (
	// RoleLaw is the legal department (quotation views).
	RoleLaw Role = "law"
	// RolePO is the purchasing department (purchase-request views).
	RolePO Role = "po"
	// RoleTracker is the CRM tracker (task dashboard).
	RoleTracker Role = "tracker"
)

// ParseRole maps a stored string onto a known role. Anything outside
// the three roles reads as "no session".
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleLaw, RolePO, RoleTracker:
		return Role(s), true
	default:
		return "", false
	}
}

// Valid reports whether r is one of the three portal roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}
