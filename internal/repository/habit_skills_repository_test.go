package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHabitSkills(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewHabitSkillsRepo(mock)
	hid, h2, s1, s2 := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	t.Run("for habit", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT skill_id FROM habit_skills WHERE habit_id = $1 ORDER BY skill_id;`)).
			WithArgs(hid).
			WillReturnRows(pgxmock.NewRows([]string{"skill_id"}).AddRow(s1).AddRow(s2))
		ids, err := repo.ListSkillIDs(context.Background(), hid)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{s1, s2}, ids)
	})
	t.Run("for user", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT hs.habit_id, hs.skill_id FROM habit_skills hs`)).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"habit_id", "skill_id"}).
				AddRow(hid, s1).
				AddRow(hid, s2).
				AddRow(h2, s1))
		links, err := repo.ListByUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID][]uuid.UUID{hid: {s1, s2}, h2: {s1}}, links)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT skill_id FROM habit_skills`)).
			WithArgs(hid).
			WillReturnError(errors.New("closed"))
		_, err := repo.ListSkillIDs(context.Background(), hid)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceHabitSkills(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewHabitSkillsRepo(mock)
	hid := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	deleteQuery := regexp.QuoteMeta(`DELETE FROM habit_skills WHERE habit_id = $1;`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO habit_skills (habit_id, skill_id) SELECT $1, unnest($2::uuid[]);`)

	testCases := []struct {
		Desc         string
		IDs          []uuid.UUID
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "replaced",
			IDs:  ids,
			MockPrepFunc: func() {
				mock.ExpectExec(deleteQuery).WithArgs(hid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectExec(insertQuery).WithArgs(hid, ids).WillReturnResult(pgxmock.NewResult("INSERT", 2))
			},
		},
		{
			Desc: "cleared",
			IDs:  []uuid.UUID{},
			MockPrepFunc: func() {
				mock.ExpectExec(deleteQuery).WithArgs(hid).WillReturnResult(pgxmock.NewResult("DELETE", 2))
			},
		},
		{
			Desc:  "skill vanished",
			IDs:   ids,
			Error: errorvalues.ErrSkillNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(deleteQuery).WithArgs(hid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec(insertQuery).WithArgs(hid, ids).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Replace(context.Background(), hid, tc.IDs)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
