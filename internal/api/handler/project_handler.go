package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qvema/qvema-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /projects. The caller becomes the owner.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project"
// @Success      201   {object}  domain.Project
// @Failure      422   {object}  errorResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req createProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), actor, ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Budget:      req.Budget,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// List handles GET /projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Mine handles GET /projects/mine.
//
// @Summary      List the caller's projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /projects/mine [get]
func (h *ProjectHandler) Mine(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	projects, err := h.service.FindByOwner(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Update handles PATCH /projects/:id. Owner only.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Changed fields"
// @Success      200   {object}  domain.Project
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id} [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req updateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Budget:      req.Budget,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /projects/:id. Owner or admin.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id   path  string  true  "Project id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
