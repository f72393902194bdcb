package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/habbit/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database and returns its id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user together with everything it owns
	Delete(ctx context.Context, uid uuid.UUID) error
}

type CharactersRepositoryI interface {
	// Creates the user's character unless it already exists
	Ensure(ctx context.Context, uid uuid.UUID, name string) error
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Character, error)
	// Applies non-nil patch fields and returns the updated character
	Update(ctx context.Context, uid uuid.UUID, patch entity.CharacterPatch) (*entity.Character, error)
	// Adds delta to total XP, never going below zero. Creates the character if missing
	AddXP(ctx context.Context, uid uuid.UUID, delta int) error
}

type SkillsRepositoryI interface {
	// Inserts skill. ID, Level and timestamps are filled from the database
	Create(ctx context.Context, skill *entity.Skill) error
	GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Skill, error)
	// Lists user's skills, newest first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Skill, error)
	Update(ctx context.Context, id, uid uuid.UUID, patch entity.SkillPatch) (*entity.Skill, error)
	// Deletes skill and returns the deleted row
	Delete(ctx context.Context, id, uid uuid.UUID) (*entity.Skill, error)
	// Returns those of ids that belong to uid
	FilterOwned(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	// Adds delta to the level of every given skill, never going below zero
	ShiftLevels(ctx context.Context, ids []uuid.UUID, delta int) error
}

type HabitsRepositoryI interface {
	// Inserts habit. ID, XP and timestamps are filled from the database
	Create(ctx context.Context, habit *entity.Habit) error
	GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Habit, error)
	// Same as GetByID but locks the row until the transaction ends
	GetForUpdate(ctx context.Context, id, uid uuid.UUID) (*entity.Habit, error)
	// Lists user's habits, newest first. SkillIDs are not filled
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	SetXP(ctx context.Context, id uuid.UUID, xp int) error
	// Deletes habit and returns the deleted row
	Delete(ctx context.Context, id, uid uuid.UUID) (*entity.Habit, error)
}

type HabitSkillsRepositoryI interface {
	ListSkillIDs(ctx context.Context, habitID uuid.UUID) ([]uuid.UUID, error)
	// Returns linked skill ids of every habit owned by uid
	ListByUser(ctx context.Context, uid uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
	// Drops all links of the habit and inserts the given set
	Replace(ctx context.Context, habitID uuid.UUID, skillIDs []uuid.UUID) error
}

type CompletionsRepositoryI interface {
	// Records completion of habit on date (YYYY-MM-DD)
	Create(ctx context.Context, habitID uuid.UUID, date string) error
	// Removes completion of habit on date
	Delete(ctx context.Context, habitID uuid.UUID, date string) error
	// Inspects if completion exists
	Exists(ctx context.Context, habitID uuid.UUID, date string) (bool, error)
	// Lists completions of every habit owned by uid, newest date first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Completion, error)
	// Provides completions of habitID for an inclusive date period
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to string) ([]entity.Completion, error)
}

// RepositoriesI gives access to every repository over one connection or transaction
type RepositoriesI interface {
	Users() UsersRepositoryI
	Characters() CharactersRepositoryI
	Skills() SkillsRepositoryI
	Habits() HabitsRepositoryI
	HabitSkills() HabitSkillsRepositoryI
	Completions() CompletionsRepositoryI
}

// UnitOfWorkI is a transaction scope. Rollback after Commit is a no-op,
// so callers defer Rollback right after Begin.
type UnitOfWorkI interface {
	RepositoriesI
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type StoreI interface {
	RepositoriesI
	Begin(ctx context.Context) (UnitOfWorkI, error)
	Ping(ctx context.Context) error
}
