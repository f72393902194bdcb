package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/habbit/internal/error_values"
)

type HabitSkillsRepository struct {
	conn DBTX
}

func NewHabitSkillsRepo(conn DBTX) *HabitSkillsRepository {
	return &HabitSkillsRepository{
		conn: conn,
	}
}

func (hsr *HabitSkillsRepository) ListSkillIDs(ctx context.Context, habitID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := hsr.conn.Query(ctx, `SELECT skill_id FROM habit_skills WHERE habit_id = $1 ORDER BY skill_id;`, habitID)
	if err != nil {
		return nil, errors.New("getting habit skills error: " + err.Error())
	}
	defer rows.Close()
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("unmarshalling skill id error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return ids, nil
}

func (hsr *HabitSkillsRepository) ListByUser(ctx context.Context, uid uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	rows, err := hsr.conn.Query(ctx, `SELECT hs.habit_id, hs.skill_id FROM habit_skills hs
		JOIN habits h ON h.id = hs.habit_id WHERE h.user_id = $1 ORDER BY hs.habit_id, hs.skill_id;`, uid)
	if err != nil {
		return nil, errors.New("getting user habit skills error: " + err.Error())
	}
	defer rows.Close()
	links := make(map[uuid.UUID][]uuid.UUID)
	for rows.Next() {
		var habitID, skillID uuid.UUID
		if err = rows.Scan(&habitID, &skillID); err != nil {
			return nil, errors.New("unmarshalling habit skill error: " + err.Error())
		}
		links[habitID] = append(links[habitID], skillID)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return links, nil
}

func (hsr *HabitSkillsRepository) Replace(ctx context.Context, habitID uuid.UUID, skillIDs []uuid.UUID) error {
	_, err := hsr.conn.Exec(ctx, `DELETE FROM habit_skills WHERE habit_id = $1;`, habitID)
	if err != nil {
		return errors.New("clearing habit skills error: " + err.Error())
	}
	if len(skillIDs) == 0 {
		return nil
	}
	_, err = hsr.conn.Exec(ctx, `INSERT INTO habit_skills (habit_id, skill_id) SELECT $1, unnest($2::uuid[]);`, habitID, skillIDs)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrSkillNotFound
		}
		return errors.New("linking habit skills error: " + err.Error())
	}
	return nil
}
