package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/habbit/internal/service"
	"github.com/limbo/habbit/pkg/entity"
	"github.com/limbo/habbit/pkg/httputil"
)

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habits, err := s.habitsService.GetUserHabits(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting habits list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habits": habits})
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	id, ok := pathIDOrBadRequest(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "getting habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habit": habit})
	logger.Info("habit provided")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	var req service.CreateHabitRequest
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r.Body, &req, false); err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "creating habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"habit": habit})
	logger.Info("habit created")
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	id, ok := pathIDOrBadRequest(w, r, logger)
	if !ok {
		return
	}
	var patch entity.HabitPatch
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r.Body, &patch, false); err != nil {
		logger.Error("update habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.UpdateHabit(ctx, uid, id, patch)
	if err != nil {
		writeServiceError(w, logger, "updating habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habit": habit})
	logger.Info("habit updated")
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	id, ok := pathIDOrBadRequest(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.DeleteHabit(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "deleting habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habit": habit})
	logger.Info("habit deleted")
}
