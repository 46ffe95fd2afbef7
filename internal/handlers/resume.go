package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/services"
	"portfolio/internal/utils/helpers"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxResumeSize is the upload cap; anything larger is rejected before the
// service runs.
const maxResumeSize = 5 << 20 // 5 MiB

type ResumeHandler struct {
	svc services.ResumeService
}

func NewResumeHandler(svc services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// saveUpload validates and stores the "resume" multipart field under a
// generated filename. Returns (nil, nil) when the field is absent so callers
// decide whether a file is required.
func (h *ResumeHandler) saveUpload(r *http.Request) (*models.UploadedFile, error) {
	file, header, err := r.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperrors.Validation("invalid resume file field")
	}
	defer file.Close()

	if header.Size > maxResumeSize {
		return nil, apperrors.Validation("file exceeds the 5 MiB limit")
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") ||
		(contentType != "" && contentType != "application/pdf") {
		return nil, apperrors.Validation("only PDF files are accepted")
	}

	// Collision-resistant stored name; the original name survives as metadata.
	filename := uuid.NewString() + ".pdf"
	fullPath := h.svc.FilePath(filename)

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return nil, err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		_ = os.Remove(fullPath)
		return nil, err
	}

	return &models.UploadedFile{
		Filename:     filename,
		OriginalName: header.Filename,
		MimeType:     "application/pdf",
		Size:         written,
	}, nil
}

func (h *ResumeHandler) discardUpload(file *models.UploadedFile) {
	if file == nil {
		return
	}
	_ = os.Remove(h.svc.FilePath(file.Filename))
}

func (h *ResumeHandler) parseUploadForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize+(1<<20))
	return r.ParseMultipartForm(maxResumeSize)
}

// List godoc
// @Summary All resumes (admin)
// @Tags resume
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Resume
// @Router /api/resume [get]
func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	resumes, err := h.svc.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, "resume")
		return
	}
	helpers.JSON(w, http.StatusOK, resumes)
}

// GetActive godoc
// @Summary Active resume metadata
// @Tags resume
// @Produce json
// @Success 200 {object} models.Resume
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/resume/active [get]
func (h *ResumeHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	resume, err := h.svc.GetActive(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			helpers.Error(w, http.StatusNotFound, "no active resume found")
			return
		}
		writeServiceError(w, err, "resume")
		return
	}
	helpers.JSON(w, http.StatusOK, resume)
}

// Get godoc
// @Summary Single resume (admin)
// @Tags resume
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Resume ID"
// @Success 200 {object} models.Resume
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/resume/{id} [get]
func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	resume, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "resume")
		return
	}
	helpers.JSON(w, http.StatusOK, resume)
}

// Create godoc
// @Summary Upload resume
// @Tags resume
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "PDF file (max 5 MiB)"
// @Param version formData string false "Version label"
// @Param description formData string false "Description"
// @Param active formData bool false "Make this the active resume"
// @Success 201 {object} models.Resume
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/resume [post]
func (h *ResumeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := h.parseUploadForm(w, r); err != nil {
		logger.WithCtx(r.Context()).Warn("resume create: form parse failed", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid or oversized upload")
		return
	}

	upload, err := h.saveUpload(r)
	if err != nil {
		writeServiceError(w, err, "resume")
		return
	}

	version := r.FormValue("version")
	description := r.FormValue("description")
	active := strings.EqualFold(r.FormValue("active"), "true")

	resume, err := h.svc.Create(r.Context(), upload, version, description, active)
	if err != nil {
		h.discardUpload(upload)
		writeServiceError(w, err, "resume")
		return
	}
	helpers.JSON(w, http.StatusCreated, resume)
}

// Update godoc
// @Summary Update resume
// @Tags resume
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Resume ID"
// @Param resume formData file false "Replacement PDF file"
// @Param version formData string false "Version label"
// @Param description formData string false "Description"
// @Param active formData bool false "Make this the active resume"
// @Success 200 {object} models.Resume
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/resume/{id} [put]
func (h *ResumeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.parseUploadForm(w, r); err != nil {
		logger.WithCtx(r.Context()).Warn("resume update: form parse failed", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid or oversized upload")
		return
	}

	upload, err := h.saveUpload(r)
	if err != nil {
		writeServiceError(w, err, "resume")
		return
	}

	req := models.ResumeUpdateRequest{}
	if vs, ok := r.MultipartForm.Value["version"]; ok && len(vs) > 0 {
		req.Version = &vs[0]
	}
	if vs, ok := r.MultipartForm.Value["description"]; ok && len(vs) > 0 {
		req.Description = &vs[0]
	}
	if vs, ok := r.MultipartForm.Value["active"]; ok && len(vs) > 0 {
		active, err := strconv.ParseBool(vs[0])
		if err != nil {
			h.discardUpload(upload)
			helpers.Error(w, http.StatusBadRequest, "invalid active value")
			return
		}
		req.Active = &active
	}

	resume, err := h.svc.Update(r.Context(), id, req, upload)
	if err != nil {
		h.discardUpload(upload)
		writeServiceError(w, err, "resume")
		return
	}
	helpers.JSON(w, http.StatusOK, resume)
}

// Delete godoc
// @Summary Delete resume
// @Tags resume
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Resume ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/resume/{id} [delete]
func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "resume")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "resume deleted"})
}

// ToggleActive godoc
// @Summary Toggle active status
// @Tags resume
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Resume ID"
// @Success 200 {object} models.Resume
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/resume/{id}/toggle-active [patch]
func (h *ResumeHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	resume, err := h.svc.ToggleActive(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "resume")
		return
	}
	helpers.JSON(w, http.StatusOK, resume)
}

// Download godoc
// @Summary Download resume binary
// @Tags resume
// @Produce octet-stream
// @Param id path int true "Resume ID"
// @Success 200 {file} file
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/resume/{id}/download [get]
func (h *ResumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	resume, path, err := h.svc.Download(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "resume")
		return
	}

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		logger.WithCtx(r.Context()).Error("resume file missing on disk",
			zap.String("filename", resume.Filename), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+resume.OriginalName+`"`)
	w.Header().Set("Content-Type", resume.MimeType)
	_, _ = w.Write(fileBytes)
}
