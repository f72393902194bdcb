package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/pkg/entity"
)

type HabitsService struct {
	store repository.StoreI
}

func NewHabitsService(store repository.StoreI) *HabitsService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	InitValidator()
	return &HabitsService{
		store: store,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	skillIDs := uniqueIDs(req.SkillIDs)

	uow, err := hs.store.Begin(ctx)
	if err != nil {
		return nil, passOrWrap("habits store", err)
	}
	defer uow.Rollback(ctx)

	if err = checkSkillsOwned(ctx, uow.Skills(), uid, skillIDs); err != nil {
		return nil, err
	}
	habit := &entity.Habit{
		UserID: uid,
		Name:   req.Name,
	}
	if err = uow.Habits().Create(ctx, habit); err != nil {
		return nil, passOrWrap("habits repository", err, errorvalues.ErrUserNotFound)
	}
	if len(skillIDs) > 0 {
		if err = uow.HabitSkills().Replace(ctx, habit.ID, skillIDs); err != nil {
			return nil, passOrWrap("habit skills repository", err, errorvalues.ErrSkillNotFound)
		}
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, passOrWrap("habits store", err)
	}
	habit.SkillIDs = skillIDs
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits, err := hs.store.Habits().ListByUser(ctx, uid)
	if err != nil {
		return nil, passOrWrap("habits repository", err)
	}
	links, err := hs.store.HabitSkills().ListByUser(ctx, uid)
	if err != nil {
		return nil, passOrWrap("habit skills repository", err)
	}
	for _, h := range habits {
		h.SkillIDs = links[h.ID]
		if h.SkillIDs == nil {
			h.SkillIDs = []uuid.UUID{}
		}
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, uid, id uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.store.Habits().GetByID(ctx, id, uid)
	if err != nil {
		return nil, passOrWrap("habits repository", err, errorvalues.ErrHabitNotFound)
	}
	habit.SkillIDs, err = hs.store.HabitSkills().ListSkillIDs(ctx, habit.ID)
	if err != nil {
		return nil, passOrWrap("habit skills repository", err)
	}
	return habit, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, uid, id uuid.UUID, patch entity.HabitPatch) (*entity.Habit, error) {
	if patch.IsEmpty() {
		return nil, errorvalues.ErrNoFieldsToUpdate
	}
	patch.Name = trimmed(patch.Name)
	if err := validateStruct(patch); err != nil {
		return nil, err
	}

	uow, err := hs.store.Begin(ctx)
	if err != nil {
		return nil, passOrWrap("habits store", err)
	}
	defer uow.Rollback(ctx)

	if _, err = uow.Habits().GetForUpdate(ctx, id, uid); err != nil {
		return nil, passOrWrap("habits repository", err, errorvalues.ErrHabitNotFound)
	}
	if patch.SkillIDs != nil {
		skillIDs := uniqueIDs(*patch.SkillIDs)
		// Every id is checked before the link set is touched
		if err = checkSkillsOwned(ctx, uow.Skills(), uid, skillIDs); err != nil {
			return nil, err
		}
		if err = uow.HabitSkills().Replace(ctx, id, skillIDs); err != nil {
			return nil, passOrWrap("habit skills repository", err, errorvalues.ErrSkillNotFound)
		}
	}
	if patch.Name != nil {
		if err = uow.Habits().Rename(ctx, id, *patch.Name); err != nil {
			return nil, passOrWrap("habits repository", err, errorvalues.ErrHabitNotFound)
		}
	}

	habit, err := uow.Habits().GetByID(ctx, id, uid)
	if err != nil {
		return nil, passOrWrap("habits repository", err, errorvalues.ErrHabitNotFound)
	}
	habit.SkillIDs, err = uow.HabitSkills().ListSkillIDs(ctx, id)
	if err != nil {
		return nil, passOrWrap("habit skills repository", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, passOrWrap("habits store", err)
	}
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, uid, id uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.store.Habits().Delete(ctx, id, uid)
	if err != nil {
		return nil, passOrWrap("habits repository", err, errorvalues.ErrHabitNotFound)
	}
	return habit, nil
}

// checkSkillsOwned fails with SkillNotFoundError naming the first id not owned by uid
func checkSkillsOwned(ctx context.Context, skills repository.SkillsRepositoryI, uid uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	owned, err := skills.FilterOwned(ctx, uid, ids)
	if err != nil {
		return passOrWrap("skills repository", err)
	}
	set := make(map[uuid.UUID]struct{}, len(owned))
	for _, id := range owned {
		set[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			return &errorvalues.SkillNotFoundError{ID: id}
		}
	}
	return nil
}

// uniqueIDs drops duplicates keeping first-seen order. Never returns nil
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
