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

type SkillHandler struct {
	svc services.SkillService
}

func NewSkillHandler(svc services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

// List godoc
// @Summary All skills (admin)
// @Tags skills
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Skill
// @Router /api/skills [get]
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.svc.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, "skill")
		return
	}
	helpers.JSON(w, http.StatusOK, skills)
}

// ListPublic godoc
// @Summary Featured skills
// @Tags skills
// @Produce json
// @Success 200 {array} models.Skill
// @Router /api/skills/public [get]
func (h *SkillHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	skills, err := h.svc.GetFeatured(r.Context())
	if err != nil {
		writeServiceError(w, err, "skill")
		return
	}
	helpers.JSON(w, http.StatusOK, skills)
}

// Get godoc
// @Summary Single skill
// @Tags skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} models.Skill
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/skills/{id} [get]
func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	skill, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "skill")
		return
	}
	helpers.JSON(w, http.StatusOK, skill)
}

// Create godoc
// @Summary Create skill
// @Tags skills
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body models.SkillRequest true "Skill data"
// @Success 201 {object} models.Skill
// @Failure 409 {object} helpers.ErrorResponse
// @Router /api/skills [post]
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("skill create: invalid json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	skill, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "skill")
		return
	}
	helpers.JSON(w, http.StatusCreated, skill)
}

// Update godoc
// @Summary Update skill
// @Tags skills
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Skill ID"
// @Param body body models.SkillRequest true "Skill data"
// @Success 200 {object} models.Skill
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/skills/{id} [put]
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("skill update: invalid json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	skill, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "skill")
		return
	}
	helpers.JSON(w, http.StatusOK, skill)
}

// Delete godoc
// @Summary Delete skill
// @Tags skills
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/skills/{id} [delete]
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "skill")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "skill deleted"})
}
