package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/pkg/httputil"
)

// writeServiceError maps a service error onto a response. Storage failures
// reach the client as a generic message only.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	logger.Error(action+" error", slog.String("error", err.Error()))
	var skillErr *errorvalues.SkillNotFoundError
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrNoFieldsToUpdate):
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.ErrNoFieldsToUpdate.Error(), nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, errorvalues.ErrWrongCredentials.Error(), nil)
	case errors.As(err, &skillErr):
		httputil.WriteErrorResponse(w, http.StatusNotFound, errorvalues.ErrSkillNotFound.Error(), skillErr)
	case errors.Is(err, errorvalues.ErrSkillNotFound):
		httputil.WriteErrorResponse(w, http.StatusNotFound, errorvalues.ErrSkillNotFound.Error(), nil)
	case errors.Is(err, errorvalues.ErrHabitNotFound):
		httputil.WriteErrorResponse(w, http.StatusNotFound, errorvalues.ErrHabitNotFound.Error(), nil)
	case errors.Is(err, errorvalues.ErrCharacterNotFound):
		httputil.WriteErrorResponse(w, http.StatusNotFound, errorvalues.ErrCharacterNotFound.Error(), nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		httputil.WriteErrorResponse(w, http.StatusNotFound, errorvalues.ErrUserNotFound.Error(), nil)
	case errors.Is(err, errorvalues.ErrAlreadyCompleted):
		httputil.WriteErrorResponse(w, http.StatusConflict, errorvalues.ErrAlreadyCompleted.Error(), nil)
	case errors.Is(err, errorvalues.ErrNotCompleted):
		httputil.WriteErrorResponse(w, http.StatusConflict, errorvalues.ErrNotCompleted.Error(), nil)
	case errors.Is(err, errorvalues.ErrUserExists):
		httputil.WriteErrorResponse(w, http.StatusConflict, errorvalues.ErrUserExists.Error(), nil)
	default:
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while "+action, nil)
	}
}
