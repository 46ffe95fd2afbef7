package handlers

import (
	"net/http"

	"portfolio/internal/logger"
	"portfolio/internal/utils/helpers"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type HealthHandler struct {
	db *pgxpool.Pool
}

func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		logger.WithCtx(r.Context()).Error("health check: db ping failed", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "database unavailable")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
