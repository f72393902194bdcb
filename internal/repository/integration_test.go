package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/internal/repository/repotest"
	"github.com/limbo/habbit/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

func TestStoreIntegration(t *testing.T) {
	store := repository.NewStore(repotest.NewPool(t))
	ctx := context.Background()

	t.Run("default user is seeded", func(t *testing.T) {
		user, err := store.Users().FindByID(ctx, defaultUserID)
		require.NoError(t, err)
		assert.Equal(t, "default@local", user.Email)
		c, err := store.Characters().GetByUserID(ctx, defaultUserID)
		require.NoError(t, err)
		assert.Equal(t, "Hero", c.Name)
		assert.Equal(t, 0, c.TotalXP)
	})

	uid, err := store.Users().Create(ctx, &entity.User{Email: "it@local", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NoError(t, store.Characters().Ensure(ctx, uid, "Hero"))

	t.Run("duplicate email", func(t *testing.T) {
		_, err := store.Users().Create(ctx, &entity.User{Email: "it@local", PasswordHash: "hash"})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})

	skill := &entity.Skill{UserID: uid, Name: "Fitness"}
	require.NoError(t, store.Skills().Create(ctx, skill))
	habit := &entity.Habit{UserID: uid, Name: "Exercise"}
	require.NoError(t, store.Habits().Create(ctx, habit))
	require.NoError(t, store.HabitSkills().Replace(ctx, habit.ID, []uuid.UUID{skill.ID}))

	t.Run("completion ledger", func(t *testing.T) {
		require.NoError(t, store.Completions().Create(ctx, habit.ID, "2026-01-15"))
		assert.ErrorIs(t, store.Completions().Create(ctx, habit.ID, "2026-01-15"), errorvalues.ErrAlreadyCompleted)
		ok, err := store.Completions().Exists(ctx, habit.ID, "2026-01-15")
		require.NoError(t, err)
		assert.True(t, ok)

		completions, err := store.Completions().ListByUser(ctx, uid)
		require.NoError(t, err)
		require.Len(t, completions, 1)
		assert.Equal(t, "2026-01-15", completions[0].Date)

		require.NoError(t, store.Completions().Delete(ctx, habit.ID, "2026-01-15"))
		assert.ErrorIs(t, store.Completions().Delete(ctx, habit.ID, "2026-01-15"), errorvalues.ErrNotCompleted)
	})

	t.Run("levels and xp never go negative", func(t *testing.T) {
		require.NoError(t, store.Skills().ShiftLevels(ctx, []uuid.UUID{skill.ID}, -1))
		s, err := store.Skills().GetByID(ctx, skill.ID, uid)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Level)

		require.NoError(t, store.Characters().AddXP(ctx, uid, -1))
		c, err := store.Characters().GetByUserID(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 0, c.TotalXP)
	})

	t.Run("rolled back unit of work leaves no trace", func(t *testing.T) {
		uow, err := store.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Completions().Create(ctx, habit.ID, "2026-01-16"))
		require.NoError(t, uow.Habits().SetXP(ctx, habit.ID, 1))
		require.NoError(t, uow.Rollback(ctx))

		h, err := store.Habits().GetByID(ctx, habit.ID, uid)
		require.NoError(t, err)
		assert.Equal(t, 0, h.XP)
		ok, err := store.Completions().Exists(ctx, habit.ID, "2026-01-16")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rollback after commit is a no-op", func(t *testing.T) {
		uow, err := store.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Habits().Rename(ctx, habit.ID, "Workout"))
		require.NoError(t, uow.Commit(ctx))
		assert.NoError(t, uow.Rollback(ctx))
	})

	t.Run("other user cannot see habit", func(t *testing.T) {
		_, err := store.Habits().GetByID(ctx, habit.ID, defaultUserID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
		owned, err := store.Skills().FilterOwned(ctx, defaultUserID, []uuid.UUID{skill.ID})
		require.NoError(t, err)
		assert.Empty(t, owned)
	})

	t.Run("skill delete cascades links", func(t *testing.T) {
		_, err := store.Skills().Delete(ctx, skill.ID, uid)
		require.NoError(t, err)
		ids, err := store.HabitSkills().ListSkillIDs(ctx, habit.ID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("user delete cascades everything", func(t *testing.T) {
		require.NoError(t, store.Users().Delete(ctx, uid))
		_, err := store.Habits().GetByID(ctx, habit.ID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
		_, err = store.Characters().GetByUserID(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrCharacterNotFound)
	})
}
