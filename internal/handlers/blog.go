package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/services"
	"portfolio/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type BlogHandler struct {
	svc services.BlogService
}

func NewBlogHandler(svc services.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

// List godoc
// @Summary All blog posts (admin)
// @Tags blog
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.BlogPost
// @Router /api/blog [get]
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, "blog post")
		return
	}
	helpers.JSON(w, http.StatusOK, posts)
}

// ListPublic godoc
// @Summary Published blog posts
// @Tags blog
// @Produce json
// @Success 200 {array} models.BlogPost
// @Router /api/blog/public [get]
func (h *BlogHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.GetPublished(r.Context())
	if err != nil {
		writeServiceError(w, err, "blog post")
		return
	}
	helpers.JSON(w, http.StatusOK, posts)
}

// GetBySlug godoc
// @Summary Published post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/blog/public/{slug} [get]
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.svc.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err, "blog post")
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Get godoc
// @Summary Single post by ID (admin)
// @Tags blog
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/blog/{id} [get]
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	post, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "blog post")
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Create godoc
// @Summary Create blog post
// @Tags blog
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body models.BlogPostRequest true "Post data"
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/blog [post]
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.BlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("blog create: invalid json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	post, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "blog post")
		return
	}
	helpers.JSON(w, http.StatusCreated, post)
}

// Update godoc
// @Summary Update blog post
// @Tags blog
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param body body models.BlogPostRequest true "Post data"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/blog/{id} [put]
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.BlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("blog update: invalid json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	post, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "blog post")
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Delete godoc
// @Summary Delete blog post
// @Tags blog
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/blog/{id} [delete]
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "blog post")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "blog post deleted"})
}

// TogglePublish godoc
// @Summary Toggle publish status
// @Tags blog
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/blog/{id}/toggle-publish [patch]
func (h *BlogHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	post, err := h.svc.TogglePublish(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "blog post")
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}
