package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID = uuid.New()
	now    = time.Date(2026, 1, 17, 10, 0, 0, 0, time.UTC)
)

func TestCreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewUsersRepo(mock)
	ctx := context.Background()
	user := &entity.User{Email: "hero@local", PasswordHash: "hash"}
	query := regexp.QuoteMeta(`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id;`)

	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(user.Email, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(userID))
		id, err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, userID, id)
	})
	t.Run("unique violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(user.Email, user.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(user.Email, user.PasswordHash).
			WillReturnError(errors.New("connection refused"))
		_, err := repo.Create(ctx, user)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("nil user", func(t *testing.T) {
		_, err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewUsersRepo(mock)
	ctx := context.Background()
	cols := []string{"id", "email", "password_hash", "created_at"}

	t.Run("by email", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, created_at FROM users WHERE email = $1;`)).
			WithArgs("hero@local").
			WillReturnRows(pgxmock.NewRows(cols).AddRow(userID, "hero@local", "hash", now))
		user, err := repo.FindByEmail(ctx, "hero@local")
		require.NoError(t, err)
		assert.Equal(t, &entity.User{ID: userID, Email: "hero@local", PasswordHash: "hash", CreatedAt: now}, user)
	})
	t.Run("by email not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, created_at FROM users WHERE email = $1;`)).
			WithArgs("nobody@local").
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByEmail(ctx, "nobody@local")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("by id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, created_at FROM users WHERE id = $1;`)).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(cols).AddRow(userID, "hero@local", "hash", now))
		user, err := repo.FindByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})
	t.Run("by id db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, created_at FROM users WHERE id = $1;`)).
			WithArgs(userID).
			WillReturnError(errors.New("timeout"))
		_, err := repo.FindByID(ctx, userID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewUsersRepo(mock)
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "deleted",
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(userID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(userID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Delete(context.Background(), userID)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
