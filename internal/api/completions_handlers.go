package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/habbit/internal/service"
	"github.com/limbo/habbit/pkg/entity"
	"github.com/limbo/habbit/pkg/httputil"
)

// defaultCompletionsWindow is the period length used when a range query omits "from"
const defaultCompletionsWindow = 30

type CompleteHabitResponse struct {
	Message string        `json:"message"`
	Habit   *entity.Habit `json:"habit"`
}

// CompleteHabit marks the habit done for the current UTC day
func (s *Server) CompleteHabit(w http.ResponseWriter, r *http.Request) {
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
	habit, err := s.completionService.CompleteHabit(ctx, service.CompletionRequest{
		UserID:  uid,
		HabitID: id,
		Date:    s.today(),
	})
	if err != nil {
		writeServiceError(w, logger, "completing habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CompleteHabitResponse{
		Message: "habit completed successfully",
		Habit:   habit,
	})
	logger.Info("habit completed", slog.String("habit_id", id.String()), slog.Int("xp", habit.XP))
}

func (s *Server) UncompleteHabit(w http.ResponseWriter, r *http.Request) {
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
	err := s.completionService.UncompleteHabit(ctx, service.CompletionRequest{
		UserID:  uid,
		HabitID: id,
		Date:    s.today(),
	})
	if err != nil {
		writeServiceError(w, logger, "uncompleting habit", err)
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "habit uncompleted successfully")
	logger.Info("habit uncompleted", slog.String("habit_id", id.String()))
}

func (s *Server) GetCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	completions, err := s.completionService.GetCompletions(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting completions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"completions": completions})
	logger.Info("completions provided")
}

// GetHabitCompletions serves ?from=&to= (inclusive). "to" defaults to today,
// "from" to a thirty day window ending at "to".
func (s *Server) GetHabitCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, logger)
	if !ok {
		return
	}
	id, ok := pathIDOrBadRequest(w, r, logger)
	if !ok {
		return
	}
	period := service.DateRange{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if period.To == "" {
		period.To = s.today()
	}
	if period.From == "" {
		to, err := time.Parse(entity.DateLayout, period.To)
		if err != nil {
			logger.Error("habit completions error: invalid period end", slog.String("to", period.To))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid period end", nil)
			return
		}
		period.From = to.AddDate(0, 0, 1-defaultCompletionsWindow).Format(entity.DateLayout)
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	completions, err := s.completionService.GetHabitCompletions(ctx, uid, id, period)
	if err != nil {
		writeServiceError(w, logger, "getting habit completions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"from":        period.From,
		"to":          period.To,
		"completions": completions,
	})
	logger.Info("habit completions provided")
}
