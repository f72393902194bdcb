package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/habbit/internal/service"
	"github.com/limbo/habbit/pkg/entity"
	"github.com/limbo/habbit/pkg/httputil"
)

func (s *Server) GetSkills(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	skills, err := s.skillsService.GetSkills(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting skills list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"skills": skills})
	logger.Info("skills provided")
}

func (s *Server) GetSkill(w http.ResponseWriter, r *http.Request) {
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
	skill, err := s.skillsService.GetSkill(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "getting skill", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"skill": skill})
	logger.Info("skill provided")
}

func (s *Server) CreateSkill(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	var req service.CreateSkillRequest
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r.Body, &req, false); err != nil {
		logger.Error("create skill error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	skill, err := s.skillsService.CreateSkill(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "creating skill", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"skill": skill})
	logger.Info("skill created")
}

func (s *Server) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	id, ok := pathIDOrBadRequest(w, r, logger)
	if !ok {
		return
	}
	var patch entity.SkillPatch
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r.Body, &patch, false); err != nil {
		logger.Error("update skill error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	skill, err := s.skillsService.UpdateSkill(ctx, uid, id, patch)
	if err != nil {
		writeServiceError(w, logger, "updating skill", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"skill": skill})
	logger.Info("skill updated")
}

func (s *Server) DeleteSkill(w http.ResponseWriter, r *http.Request) {
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
	skill, err := s.skillsService.DeleteSkill(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "deleting skill", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"skill": skill})
	logger.Info("skill deleted")
}
