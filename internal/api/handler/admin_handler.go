package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qvema/qvema-api/internal/core/ports"
)

// AdminHandler serves the /admin area. Access is checked by middleware.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Dashboard godoc
// @Summary   Platform totals
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  domain.Dashboard
// @Failure   403  {object}  errorResponse
// @Router    /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	d, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Users godoc
// @Summary   All users
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}   domain.User
// @Failure   403  {object}  errorResponse
// @Router    /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.service.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Projects godoc
// @Summary   All projects
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}   domain.Project
// @Failure   403  {object}  errorResponse
// @Router    /admin/projects [get]
func (h *AdminHandler) Projects(c echo.Context) error {
	projects, err := h.service.Projects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Investments godoc
// @Summary   All investments
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}   domain.Investment
// @Failure   403  {object}  errorResponse
// @Router    /admin/investments [get]
func (h *AdminHandler) Investments(c echo.Context) error {
	invs, err := h.service.Investments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invs)
}
