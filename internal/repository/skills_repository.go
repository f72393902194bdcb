package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/pkg/entity"
)

const skillColumns = `id, user_id, name, level, created_at, updated_at`

type SkillsRepository struct {
	conn DBTX
}

func NewSkillsRepo(conn DBTX) *SkillsRepository {
	return &SkillsRepository{
		conn: conn,
	}
}

func (sr *SkillsRepository) Create(ctx context.Context, skill *entity.Skill) error {
	if skill == nil {
		return errors.New("skill is nil")
	}
	err := sr.conn.QueryRow(ctx, `INSERT INTO skills (user_id, name) VALUES ($1, $2) RETURNING id, level, created_at, updated_at;`,
		skill.UserID, skill.Name,
	).Scan(&skill.ID, &skill.Level, &skill.CreatedAt, &skill.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating skill db error: " + err.Error())
	}
	return nil
}

func (sr *SkillsRepository) GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Skill, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1 AND user_id = $2;`, id, uid)
	s, err := scanSkill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSkillNotFound
		}
		return nil, errors.New("getting skill by id error: " + err.Error())
	}
	return s, nil
}

func (sr *SkillsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Skill, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+skillColumns+` FROM skills WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting skills by uid error: " + err.Error())
	}
	defer rows.Close()
	skills := make([]*entity.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, errors.New("unmarshalling skill error: " + err.Error())
		}
		skills = append(skills, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return skills, nil
}

func (sr *SkillsRepository) Update(ctx context.Context, id, uid uuid.UUID, patch entity.SkillPatch) (*entity.Skill, error) {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Level != nil {
		set.add("level", *patch.Level)
	}
	if set.empty() {
		return nil, errorvalues.ErrNoFieldsToUpdate
	}
	cols, n := set.build()
	query := fmt.Sprintf(`UPDATE skills SET %s WHERE id = $%d AND user_id = $%d RETURNING %s;`, cols, n, n+1, skillColumns)
	s, err := scanSkill(sr.conn.QueryRow(ctx, query, append(set.args, id, uid)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSkillNotFound
		}
		return nil, errors.New("updating skill error: " + err.Error())
	}
	return s, nil
}

func (sr *SkillsRepository) Delete(ctx context.Context, id, uid uuid.UUID) (*entity.Skill, error) {
	row := sr.conn.QueryRow(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2 RETURNING `+skillColumns+`;`, id, uid)
	s, err := scanSkill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSkillNotFound
		}
		return nil, errors.New("deleting skill error: " + err.Error())
	}
	return s, nil
}

func (sr *SkillsRepository) FilterOwned(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	owned := make([]uuid.UUID, 0, len(ids))
	if len(ids) == 0 {
		return owned, nil
	}
	rows, err := sr.conn.Query(ctx, `SELECT id FROM skills WHERE user_id = $1 AND id = ANY($2);`, uid, ids)
	if err != nil {
		return nil, errors.New("checking skills ownership error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("unmarshalling skill id error: " + err.Error())
		}
		owned = append(owned, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return owned, nil
}

func (sr *SkillsRepository) ShiftLevels(ctx context.Context, ids []uuid.UUID, delta int) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := sr.conn.Exec(ctx, `UPDATE skills SET level = GREATEST(0, level + $1), updated_at = NOW() WHERE id = ANY($2);`, delta, ids)
	if err != nil {
		return errors.New("shifting skill levels error: " + err.Error())
	}
	return nil
}

func scanSkill(row pgx.Row) (*entity.Skill, error) {
	var s entity.Skill
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Level, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
