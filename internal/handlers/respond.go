package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio/internal/apperrors"
	"portfolio/internal/utils/helpers"

	"github.com/gorilla/mux"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Unexpected errors become a generic 500; details stay in the server log.
func writeServiceError(w http.ResponseWriter, err error, entity string) {
	switch {
	case apperrors.IsValidation(err):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, apperrors.ErrConflict):
		helpers.Error(w, http.StatusConflict, entity+" already exists")
	case errors.Is(err, apperrors.ErrUnauthorized):
		helpers.Error(w, http.StatusUnauthorized, "invalid credentials")
	default:
		helpers.Error(w, http.StatusInternalServerError, "server error")
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
