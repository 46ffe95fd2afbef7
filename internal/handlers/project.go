package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/services"
	"portfolio/internal/utils/helpers"

	"go.uber.org/zap"
)

type ProjectHandler struct {
	svc services.ProjectService
}

func NewProjectHandler(svc services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List godoc
// @Summary All projects (admin)
// @Tags projects
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Project
// @Router /api/projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, "project")
		return
	}
	helpers.JSON(w, http.StatusOK, projects)
}

// ListPublic godoc
// @Summary Public project list
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /api/projects/public [get]
func (h *ProjectHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, "project")
		return
	}
	helpers.JSON(w, http.StatusOK, projects)
}

// Get godoc
// @Summary Single project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	project, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "project")
		return
	}
	helpers.JSON(w, http.StatusOK, project)
}

// Create godoc
// @Summary Create project
// @Tags projects
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body models.ProjectRequest true "Project data"
// @Success 201 {object} models.Project
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("project create: invalid json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	project, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "project")
		return
	}
	helpers.JSON(w, http.StatusCreated, project)
}

// Update godoc
// @Summary Update project
// @Tags projects
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body models.ProjectRequest true "Project data"
// @Success 200 {object} models.Project
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/projects/{id} [put]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("project update: invalid json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	project, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "project")
		return
	}
	helpers.JSON(w, http.StatusOK, project)
}

// Delete godoc
// @Summary Delete project
// @Tags projects
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "project")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}
