package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type Store struct {
	conn PgConnection
}

func NewStore(conn PgConnection) *Store {
	return &Store{conn: conn}
}

func (s *Store) Users() UsersRepositoryI             { return NewUsersRepo(s.conn) }
func (s *Store) Characters() CharactersRepositoryI   { return NewCharactersRepo(s.conn) }
func (s *Store) Skills() SkillsRepositoryI           { return NewSkillsRepo(s.conn) }
func (s *Store) Habits() HabitsRepositoryI           { return NewHabitsRepo(s.conn) }
func (s *Store) HabitSkills() HabitSkillsRepositoryI { return NewHabitSkillsRepo(s.conn) }
func (s *Store) Completions() CompletionsRepositoryI { return NewCompletionsRepo(s.conn) }

func (s *Store) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

func (s *Store) Begin(ctx context.Context) (UnitOfWorkI, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning transaction error: " + err.Error())
	}
	return &unitOfWork{tx: tx}, nil
}

type unitOfWork struct {
	tx pgx.Tx
}

func (u *unitOfWork) Users() UsersRepositoryI             { return NewUsersRepo(u.tx) }
func (u *unitOfWork) Characters() CharactersRepositoryI   { return NewCharactersRepo(u.tx) }
func (u *unitOfWork) Skills() SkillsRepositoryI           { return NewSkillsRepo(u.tx) }
func (u *unitOfWork) Habits() HabitsRepositoryI           { return NewHabitsRepo(u.tx) }
func (u *unitOfWork) HabitSkills() HabitSkillsRepositoryI { return NewHabitSkillsRepo(u.tx) }
func (u *unitOfWork) Completions() CompletionsRepositoryI { return NewCompletionsRepo(u.tx) }

func (u *unitOfWork) Commit(ctx context.Context) error {
	if err := u.tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	err := u.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return errors.New("rolling back transaction error: " + err.Error())
	}
	return nil
}
