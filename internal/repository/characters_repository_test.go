package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var characterCols = []string{"id", "user_id", "name", "head", "chest", "legs", "weapon", "accessory", "total_xp", "created_at", "updated_at"}

func TestEnsureCharacter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewCharactersRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO characters (user_id, name) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING;`)

	t.Run("created or kept", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID, "Hero").WillReturnResult(pgxmock.NewResult("INSERT", 0))
		assert.NoError(t, repo.Ensure(context.Background(), userID, "Hero"))
	})
	t.Run("owner missing", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID, "Hero").WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Ensure(context.Background(), userID, "Hero"), errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCharacter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewCharactersRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, name, head, chest, legs, weapon, accessory, total_xp, created_at, updated_at FROM characters WHERE user_id = $1;`)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(characterCols).AddRow(int64(1), userID, "Hero", 1, 2, 3, 4, 0, 12, now, now))
		c, err := repo.GetByUserID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, &entity.Character{
			ID: 1, UserID: userID, Name: "Hero",
			Head: 1, Chest: 2, Legs: 3, Weapon: 4, Accessory: 0,
			TotalXP: 12, CreatedAt: now, UpdatedAt: now,
		}, c)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByUserID(context.Background(), userID)
		assert.ErrorIs(t, err, errorvalues.ErrCharacterNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCharacter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewCharactersRepo(mock)
	ctx := context.Background()
	name, head := "Knight", 3

	t.Run("partial patch", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE characters SET name = $1, head = $2, updated_at = NOW() WHERE user_id = $3 RETURNING id, user_id, name, head, chest, legs, weapon, accessory, total_xp, created_at, updated_at;`)).
			WithArgs(name, head, userID).
			WillReturnRows(pgxmock.NewRows(characterCols).AddRow(int64(1), userID, name, head, 0, 0, 0, 0, 7, now, now))
		c, err := repo.Update(ctx, userID, entity.CharacterPatch{Name: &name, Head: &head})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name)
		assert.Equal(t, head, c.Head)
		assert.Equal(t, 7, c.TotalXP)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE characters SET head = $1, updated_at = NOW() WHERE user_id = $2`)).
			WithArgs(head, userID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Update(ctx, userID, entity.CharacterPatch{Head: &head})
		assert.ErrorIs(t, err, errorvalues.ErrCharacterNotFound)
	})
	t.Run("empty patch", func(t *testing.T) {
		_, err := repo.Update(ctx, userID, entity.CharacterPatch{})
		assert.ErrorIs(t, err, errorvalues.ErrNoFieldsToUpdate)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCharacterXP(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewCharactersRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO characters (user_id, total_xp) VALUES ($1, GREATEST(0, $2::int))`)

	t.Run("increment", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID, 1).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.AddXP(context.Background(), userID, 1))
	})
	t.Run("decrement", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID, -1).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.AddXP(context.Background(), userID, -1))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID, 1).WillReturnError(errors.New("broken pipe"))
		assert.Error(t, repo.AddXP(context.Background(), userID, 1))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
