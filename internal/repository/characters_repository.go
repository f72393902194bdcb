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

const characterColumns = `id, user_id, name, head, chest, legs, weapon, accessory, total_xp, created_at, updated_at`

type CharactersRepository struct {
	conn DBTX
}

func NewCharactersRepo(conn DBTX) *CharactersRepository {
	return &CharactersRepository{
		conn: conn,
	}
}

func (cr *CharactersRepository) Ensure(ctx context.Context, uid uuid.UUID, name string) error {
	_, err := cr.conn.Exec(ctx, `INSERT INTO characters (user_id, name) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING;`, uid, name)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating character error: " + err.Error())
	}
	return nil
}

func (cr *CharactersRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Character, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+characterColumns+` FROM characters WHERE user_id = $1;`, uid)
	c, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCharacterNotFound
		}
		return nil, errors.New("getting character error: " + err.Error())
	}
	return c, nil
}

func (cr *CharactersRepository) Update(ctx context.Context, uid uuid.UUID, patch entity.CharacterPatch) (*entity.Character, error) {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Head != nil {
		set.add("head", *patch.Head)
	}
	if patch.Chest != nil {
		set.add("chest", *patch.Chest)
	}
	if patch.Legs != nil {
		set.add("legs", *patch.Legs)
	}
	if patch.Weapon != nil {
		set.add("weapon", *patch.Weapon)
	}
	if patch.Accessory != nil {
		set.add("accessory", *patch.Accessory)
	}
	if set.empty() {
		return nil, errorvalues.ErrNoFieldsToUpdate
	}
	cols, n := set.build()
	query := fmt.Sprintf(`UPDATE characters SET %s WHERE user_id = $%d RETURNING %s;`, cols, n, characterColumns)
	c, err := scanCharacter(cr.conn.QueryRow(ctx, query, append(set.args, uid)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCharacterNotFound
		}
		return nil, errors.New("updating character error: " + err.Error())
	}
	return c, nil
}

func (cr *CharactersRepository) AddXP(ctx context.Context, uid uuid.UUID, delta int) error {
	_, err := cr.conn.Exec(ctx, `INSERT INTO characters (user_id, total_xp) VALUES ($1, GREATEST(0, $2::int))
		ON CONFLICT (user_id) DO UPDATE SET total_xp = GREATEST(0, characters.total_xp + $2::int), updated_at = NOW();`,
		uid, delta,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("adding character xp error: " + err.Error())
	}
	return nil
}

func scanCharacter(row pgx.Row) (*entity.Character, error) {
	var c entity.Character
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Head, &c.Chest, &c.Legs, &c.Weapon, &c.Accessory,
		&c.TotalXP, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
