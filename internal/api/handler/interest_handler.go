package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qvema/qvema-api/internal/core/ports"
)

type InterestHandler struct {
	service ports.InterestService
}

func NewInterestHandler(service ports.InterestService) *InterestHandler {
	return &InterestHandler{service: service}
}

// Create handles POST /interests.
//
// @Summary      Create an interest
// @Tags         interests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInterestRequest  true  "Interest"
// @Success      201   {object}  domain.Interest
// @Failure      422   {object}  errorResponse
// @Router       /interests [post]
func (h *InterestHandler) Create(c echo.Context) error {
	var req createInterestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in, err := h.service.Create(c.Request().Context(), ports.CreateInterestInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, in)
}

// List handles GET /interests.
//
// @Summary      List interests
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Interest
// @Router       /interests [get]
func (h *InterestHandler) List(c echo.Context) error {
	list, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get handles GET /interests/:id.
//
// @Summary      Get an interest
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Interest id"
// @Success      200  {object}  domain.Interest
// @Failure      404  {object}  errorResponse
// @Router       /interests/{id} [get]
func (h *InterestHandler) Get(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	in, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, in)
}

// Update handles PATCH /interests/:id.
//
// @Summary      Update an interest
// @Tags         interests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Interest id"
// @Param        body  body      updateInterestRequest  true  "Changed fields"
// @Success      200   {object}  domain.Interest
// @Failure      404   {object}  errorResponse
// @Router       /interests/{id} [patch]
func (h *InterestHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var req updateInterestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in, err := h.service.Update(c.Request().Context(), actor, id, ports.UpdateInterestInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, in)
}

// Delete handles DELETE /interests/:id.
//
// @Summary      Delete an interest
// @Tags         interests
// @Security     BearerAuth
// @Param        id   path  int  true  "Interest id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /interests/{id} [delete]
func (h *InterestHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Attach handles POST /interests/user/:userId. Ids are appended as given;
// repeating an id attaches it again.
//
// @Summary      Attach interests to a user
// @Tags         interests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string                  true  "User id"
// @Param        body    body      attachInterestsRequest  true  "Interest ids"
// @Success      200     {object}  domain.User
// @Failure      404     {object}  errorResponse
// @Router       /interests/user/{userId} [post]
func (h *InterestHandler) Attach(c echo.Context) error {
	var req attachInterestsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.AttachToUser(c.Request().Context(), c.Param("userId"), req.InterestIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ForUser handles GET /interests/user/:userId.
//
// @Summary      List a user's interests
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   domain.Interest
// @Failure      404     {object}  errorResponse
// @Router       /interests/user/{userId} [get]
func (h *InterestHandler) ForUser(c echo.Context) error {
	list, err := h.service.UserInterests(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}
