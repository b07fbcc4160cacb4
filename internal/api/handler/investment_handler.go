package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qvema/qvema-api/internal/core/ports"
)

type InvestmentHandler struct {
	service ports.InvestmentService
}

func NewInvestmentHandler(service ports.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{service: service}
}

// Create handles POST /investments. The caller is the investor.
//
// @Summary      Invest in a project
// @Tags         investments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvestmentRequest  true  "Investment"
// @Success      201   {object}  domain.Investment
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /investments [post]
func (h *InvestmentHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req createInvestmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	inv, err := h.service.Create(c.Request().Context(), actor, ports.CreateInvestmentInput{
		ProjectID: req.ProjectID,
		Amount:    req.Amount,
		Terms:     req.Terms,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inv)
}

// Mine handles GET /investments: the caller's investments with their project.
//
// @Summary      List the caller's investments
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Investment
// @Router       /investments [get]
func (h *InvestmentHandler) Mine(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	invs, err := h.service.FindByInvestor(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invs)
}

// ByProject handles GET /investments/project/:projectId.
//
// @Summary      List a project's investments
// @Description  Visible to admins, the project owner and the project's investors.
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project id"
// @Success      200        {array}   domain.Investment
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /investments/project/{projectId} [get]
func (h *InvestmentHandler) ByProject(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	invs, err := h.service.FindByProject(c.Request().Context(), actor, c.Param("projectId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invs)
}

// Get handles GET /investments/:id.
//
// @Summary      Get an investment
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Investment id"
// @Success      200  {object}  domain.Investment
// @Failure      404  {object}  errorResponse
// @Router       /investments/{id} [get]
func (h *InvestmentHandler) Get(c echo.Context) error {
	inv, err := h.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inv)
}

// Update handles PATCH /investments/:id. Investor only.
//
// @Summary      Update an investment
// @Tags         investments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Investment id"
// @Param        body  body      updateInvestmentRequest  true  "Changed fields"
// @Success      200   {object}  domain.Investment
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /investments/{id} [patch]
func (h *InvestmentHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req updateInvestmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	inv, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateInvestmentInput{
		Amount: req.Amount,
		Terms:  req.Terms,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inv)
}

// Delete handles DELETE /investments/:id. Investor only, admins included.
//
// @Summary      Cancel an investment
// @Tags         investments
// @Security     BearerAuth
// @Param        id   path  string  true  "Investment id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /investments/{id} [delete]
func (h *InvestmentHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
