package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
)

type userDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

func (d userDTO) toDomain() domain.User {
	return domain.User{
		ID:       d.ID,
		Username: d.Username,
		Role:     domain.ParseRole(d.Role),
		Active:   d.Active,
	}
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	raw, err := c.call(ctx, "list_users", http.MethodGet, "/users", nil, nil)
	if err != nil {
		return nil, err
	}
	var dtos []userDTO
	if err := decode(raw, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.User, len(dtos))
	for i, d := range dtos {
		out[i] = d.toDomain()
	}
	return out, nil
}

type registerPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) RegisterUser(ctx context.Context, in ports.RegisterUserInput) (domain.User, error) {
	raw, err := c.call(ctx, "register_user", http.MethodPost, "/users/register", nil, registerPayload{
		Username: in.Username,
		Password: in.Password,
		Role:     string(in.Role),
	})
	if err != nil {
		return domain.User{}, err
	}
	var d userDTO
	if err := decode(raw, &d); err != nil {
		return domain.User{}, err
	}
	return d.toDomain(), nil
}

// SetUserActive flips a user's activation flag. The backend exposes the
// toggle as two verb-style endpoints rather than a body field.
func (c *Client) SetUserActive(ctx context.Context, id int64, active bool) error {
	action := "deactive"
	op := "deactivate_user"
	if active {
		action = "active"
		op = "activate_user"
	}
	_, err := c.call(ctx, op, http.MethodPut, "/users/user/"+strconv.FormatInt(id, 10)+"/"+action, nil, nil)
	return err
}
