package domain

// Session is the client-held authentication state for one operator: the
// backend-issued bearer token and the role extracted from the login response.
type Session struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// Authenticated reports whether the session carries a token. This is the
// session invariant: authenticated if and only if a token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
