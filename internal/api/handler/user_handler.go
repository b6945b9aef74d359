package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// UserHandler backs the user management screen.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type registerUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ADMIN INVENTORY_MANAGER SALES_EXECUTIVE"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// List returns all users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /console/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Register creates a user account.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "New user fields"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /console/admin/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// SetActive toggles a user's activation flag. The response carries the whole
// collection so the screen can re-render it, rolled back if the backend
// rejected the toggle.
//
// @Summary      Toggle user activation
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "User ID"
// @Param        body  body      setActiveRequest  true  "Target state"
// @Success      200   {array}   domain.User
// @Failure      400   {object}  map[string]string
// @Router       /console/admin/users/{id}/active [put]
func (h *UserHandler) SetActive(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	users, err := h.service.SetActive(c.Request().Context(), id, req.Active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
