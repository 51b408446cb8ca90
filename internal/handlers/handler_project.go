package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{
		projectService: ps,
	}
}

// registerProjectRoutes registers routes related to projects.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:projectID", h.getProject)
		projects.PUT("/:projectID", h.updateProject)
		projects.DELETE("/:projectID", h.deleteProject)
	}
}

// createProject godoc
// @Summary Create a project
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "CreateProject request")
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create project")
		return
	}

	logger.Info("Project created", slog.String("project_id", project.ID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce  json
// @Success 200 {array} dto.ProjectResponse
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectResponse(projects))
}

// getProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce  json
// @Param   projectID path string true "Project ID (UUID)"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid project ID"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to retrieve project"
// @Router /projects/{projectID} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := uuidParam(c, logger, "projectID")
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, logger, err, "retrieve project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID (UUID)"
// @Param   project body dto.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to update project"
// @Router /projects/{projectID} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := uuidParam(c, logger, "projectID")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "UpdateProject request")
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, req)
	if err != nil {
		respondError(c, logger, err, "update project")
		return
	}

	logger.Info("Project updated", slog.String("project_id", project.ID))
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// deleteProject godoc
// @Summary Delete a project
// @Description Rejected with 409 while guarantee letters or credits reference the project.
// @Tags projects
// @Param   projectID path string true "Project ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid project ID"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 409 {object} map[string]string "Project is still referenced"
// @Failure 500 {object} map[string]string "Failed to delete project"
// @Router /projects/{projectID} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := uuidParam(c, logger, "projectID")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		respondError(c, logger, err, "delete project")
		return
	}

	logger.Info("Project deleted", slog.String("project_id", projectID))
	c.Status(http.StatusNoContent)
}
