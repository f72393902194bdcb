package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/pkg/entity"
)

const habitColumns = `id, user_id, name, xp, created_at, updated_at`

type HabitsRepository struct {
	conn DBTX
}

func NewHabitsRepo(conn DBTX) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) error {
	if habit == nil {
		return errors.New("habit is nil")
	}
	err := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, name) VALUES ($1, $2) RETURNING id, xp, created_at, updated_at;`,
		habit.UserID, habit.Name,
	).Scan(&habit.ID, &habit.XP, &habit.CreatedAt, &habit.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating habit db error: " + err.Error())
	}
	return nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Habit, error) {
	return hr.get(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1 AND user_id = $2;`, id, uid)
}

func (hr *HabitsRepository) GetForUpdate(ctx context.Context, id, uid uuid.UUID) (*entity.Habit, error) {
	return hr.get(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1 AND user_id = $2 FOR UPDATE;`, id, uid)
}

func (hr *HabitsRepository) get(ctx context.Context, query string, id, uid uuid.UUID) (*entity.Habit, error) {
	h, err := scanHabit(hr.conn.QueryRow(ctx, query, id, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return h, nil
}

func (hr *HabitsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, h)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET name = $1, updated_at = NOW() WHERE id = $2;`, name, id)
	if err != nil {
		return errors.New("error updating habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) SetXP(ctx context.Context, id uuid.UUID, xp int) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET xp = $1, updated_at = NOW() WHERE id = $2;`, xp, id)
	if err != nil {
		return errors.New("error setting habit xp: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id, uid uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `DELETE FROM habits WHERE id = $1 AND user_id = $2 RETURNING `+habitColumns+`;`, id, uid)
	h, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("deleting habit error: " + err.Error())
	}
	return h, nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	var h entity.Habit
	if err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.XP, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}
