package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/service"
)

// NavHandler serves the role-gated navigation menu.
type NavHandler struct{}

func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

type menuResponse struct {
	Sections []domain.MenuSection `json:"sections"`
}

// Menu returns the sections visible to the session's role.
//
// @Summary      Navigation menu
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  menuResponse
// @Failure      401  {object}  map[string]string
// @Router       /console/menu [get]
func (h *NavHandler) Menu(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menuResponse{Sections: service.MenuFor(sess.Role)})
}
