package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/pkg/entity"
)

type CompletionsRepository struct {
	conn DBTX
}

func NewCompletionsRepo(conn DBTX) *CompletionsRepository {
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Create(ctx context.Context, habitID uuid.UUID, date string) error {
	_, err := cr.conn.Exec(ctx, `INSERT INTO completions (habit_id, completed_date) VALUES ($1, $2::date);`, habitID, date)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrAlreadyCompleted
		case pgForeignKeyViolation:
			return errorvalues.ErrHabitNotFound
		}
		return errors.New("creating completion error: " + err.Error())
	}
	return nil
}

func (cr *CompletionsRepository) Delete(ctx context.Context, habitID uuid.UUID, date string) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM completions WHERE habit_id = $1 AND completed_date = $2::date;`, habitID, date)
	if err != nil {
		return errors.New("deleting completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotCompleted
	}
	return nil
}

func (cr *CompletionsRepository) Exists(ctx context.Context, habitID uuid.UUID, date string) (bool, error) {
	var exists bool
	err := cr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM completions WHERE habit_id = $1 AND completed_date = $2::date);`,
		habitID, date,
	).Scan(&exists)
	if err != nil {
		return false, errors.New("checking completion error: " + err.Error())
	}
	return exists, nil
}

func (cr *CompletionsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Completion, error) {
	rows, err := cr.conn.Query(ctx, `SELECT c.id, c.habit_id, to_char(c.completed_date, 'YYYY-MM-DD'), c.created_at
		FROM completions c JOIN habits h ON h.id = c.habit_id
		WHERE h.user_id = $1 ORDER BY c.completed_date DESC, c.id DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting completions error: " + err.Error())
	}
	return collectCompletions(rows)
}

func (cr *CompletionsRepository) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to string) ([]entity.Completion, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, habit_id, to_char(completed_date, 'YYYY-MM-DD'), created_at
		FROM completions WHERE habit_id = $1 AND completed_date BETWEEN $2::date AND $3::date
		ORDER BY completed_date DESC;`, habitID, from, to)
	if err != nil {
		return nil, errors.New("getting habit completions error: " + err.Error())
	}
	return collectCompletions(rows)
}

func collectCompletions(rows pgx.Rows) ([]entity.Completion, error) {
	defer rows.Close()
	completions := make([]entity.Completion, 0)
	for rows.Next() {
		var c entity.Completion
		if err := rows.Scan(&c.ID, &c.HabitID, &c.Date, &c.CreatedAt); err != nil {
			return nil, errors.New("unmarshalling completion error: " + err.Error())
		}
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return completions, nil
}
