package auth

import "crypto/subtle"

// Verifier checks sign-in credentials for a role. A failed check is
// ErrAuthMismatch regardless of which field was wrong.
type Verifier interface {
	Verify(role Role, username, password string) error
}

// Credential is one row of the static sign-in table.
type Credential struct {
	Username string
	Password string
}

// StaticVerifier verifies against a fixed per-role credential table.
type StaticVerifier map[Role]Credential

// Verify compares username and password in constant time against the
// role's entry. Unknown roles fail the same way wrong credentials do.
func (v StaticVerifier) Verify(role Role, username, password string) error {
	c, ok := v[role]
	if !ok {
		return ErrAuthMismatch
	}
	userOK := subtle.ConstantTimeCompare([]byte(c.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
	if !userOK || !passOK {
		return ErrAuthMismatch
	}
	return nil
}

// DefaultCredentials is the portal's built-in sign-in table.
func DefaultCredentials() StaticVerifier {
	return StaticVerifier{
		RoleLaw:     {Username: "law", Password: "law@1234"},
		RolePO:      {Username: "po", Password: "po@1234"},
		RoleTracker: {Username: "tracker", Password: "tracker@1234"},
	}
}
