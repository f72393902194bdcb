package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/pkg/entity"
)

type CompletionService struct {
	store repository.StoreI
}

func NewCompletionService(store repository.StoreI) *CompletionService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	InitValidator()
	return &CompletionService{
		store: store,
	}
}

func (cs *CompletionService) CompleteHabit(ctx context.Context, req CompletionRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	uow, err := cs.store.Begin(ctx)
	if err != nil {
		return nil, passOrWrap("completion store", err)
	}
	defer uow.Rollback(ctx)

	habit, err := uow.Habits().GetForUpdate(ctx, req.HabitID, req.UserID)
	if err != nil {
		return nil, passOrWrap("habits repository", err, errorvalues.ErrHabitNotFound)
	}
	done, err := uow.Completions().Exists(ctx, habit.ID, req.Date)
	if err != nil {
		return nil, passOrWrap("completions repository", err)
	}
	if done {
		return nil, errorvalues.ErrAlreadyCompleted
	}
	if err = uow.Completions().Create(ctx, habit.ID, req.Date); err != nil {
		return nil, passOrWrap("completions repository", err, errorvalues.ErrAlreadyCompleted, errorvalues.ErrHabitNotFound)
	}

	habit.XP++
	if err = uow.Habits().SetXP(ctx, habit.ID, habit.XP); err != nil {
		return nil, passOrWrap("habits repository", err)
	}
	skillIDs, err := uow.HabitSkills().ListSkillIDs(ctx, habit.ID)
	if err != nil {
		return nil, passOrWrap("habit skills repository", err)
	}
	if IsBoundaryXP(habit.XP) {
		if err = uow.Skills().ShiftLevels(ctx, skillIDs, 1); err != nil {
			return nil, passOrWrap("skills repository", err)
		}
	}
	if err = uow.Characters().AddXP(ctx, req.UserID, 1); err != nil {
		return nil, passOrWrap("characters repository", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, passOrWrap("completion store", err)
	}
	habit.SkillIDs = skillIDs
	return habit, nil
}

func (cs *CompletionService) UncompleteHabit(ctx context.Context, req CompletionRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	uow, err := cs.store.Begin(ctx)
	if err != nil {
		return passOrWrap("completion store", err)
	}
	defer uow.Rollback(ctx)

	habit, err := uow.Habits().GetForUpdate(ctx, req.HabitID, req.UserID)
	if err != nil {
		return passOrWrap("habits repository", err, errorvalues.ErrHabitNotFound)
	}
	done, err := uow.Completions().Exists(ctx, habit.ID, req.Date)
	if err != nil {
		return passOrWrap("completions repository", err)
	}
	if !done {
		return errorvalues.ErrNotCompleted
	}
	if err = uow.Completions().Delete(ctx, habit.ID, req.Date); err != nil {
		return passOrWrap("completions repository", err, errorvalues.ErrNotCompleted)
	}

	// Level-down is decided on the XP the removed completion had produced
	wasLevelUp := IsBoundaryXP(habit.XP)
	habit.XP = max(0, habit.XP-1)
	if err = uow.Habits().SetXP(ctx, habit.ID, habit.XP); err != nil {
		return passOrWrap("habits repository", err)
	}
	if wasLevelUp {
		skillIDs, err := uow.HabitSkills().ListSkillIDs(ctx, habit.ID)
		if err != nil {
			return passOrWrap("habit skills repository", err)
		}
		if err = uow.Skills().ShiftLevels(ctx, skillIDs, -1); err != nil {
			return passOrWrap("skills repository", err)
		}
	}
	if err = uow.Characters().AddXP(ctx, req.UserID, -1); err != nil {
		return passOrWrap("characters repository", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return passOrWrap("completion store", err)
	}
	return nil
}

func (cs *CompletionService) GetCompletions(ctx context.Context, uid uuid.UUID) ([]entity.Completion, error) {
	completions, err := cs.store.Completions().ListByUser(ctx, uid)
	if err != nil {
		return nil, passOrWrap("completions repository", err)
	}
	return completions, nil
}

func (cs *CompletionService) GetHabitCompletions(ctx context.Context, uid, habitID uuid.UUID, period DateRange) ([]entity.Completion, error) {
	if err := validateStruct(period); err != nil {
		return nil, err
	}
	if period.From > period.To {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("period start is after its end"))
	}
	if _, err := cs.store.Habits().GetByID(ctx, habitID, uid); err != nil {
		return nil, passOrWrap("habits repository", err, errorvalues.ErrHabitNotFound)
	}
	completions, err := cs.store.Completions().GetByHabitAndDateRange(ctx, habitID, period.From, period.To)
	if err != nil {
		return nil, passOrWrap("completions repository", err)
	}
	return completions, nil
}
