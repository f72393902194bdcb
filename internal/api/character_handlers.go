package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/habbit/pkg/entity"
	"github.com/limbo/habbit/pkg/httputil"
)

func (s *Server) GetCharacter(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	character, err := s.characterService.GetCharacter(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting character", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"character": character})
	logger.Info("character provided")
}

// UpdateCharacter rejects unknown fields, total_xp included
func (s *Server) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	var patch entity.CharacterPatch
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r.Body, &patch, true); err != nil {
		logger.Error("update character error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	character, err := s.characterService.UpdateCharacter(ctx, uid, patch)
	if err != nil {
		writeServiceError(w, logger, "updating character", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"character": character})
	logger.Info("character updated")
}
