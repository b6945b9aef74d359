package backend

import (
	"context"
	"net/http"

	"github.com/smartinventory/pos-admin/internal/core/ports"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginDTO struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login exchanges operator credentials for a bearer token and role. The call
// itself is unauthenticated; bad credentials surface as an *APIError.
func (c *Client) Login(ctx context.Context, username, password string) (ports.LoginData, error) {
	raw, err := c.call(ctx, "login", http.MethodPost, "/auth/login", nil,
		loginPayload{Username: username, Password: password})
	if err != nil {
		return ports.LoginData{}, err
	}
	var d loginDTO
	if err := decode(raw, &d); err != nil {
		return ports.LoginData{}, err
	}
	return ports.LoginData{Token: d.Token, Role: d.Role}, nil
}
