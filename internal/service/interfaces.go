package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/habbit/pkg/entity"
)

const DefaultCharacterName = "Hero"

type RegisterRequest struct {
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=6,max=72"`
}

type UserServiceI interface {
	// Validates credentials, creates the user together with its character. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

// CompletionRequest targets one habit on one calendar day (YYYY-MM-DD)
type CompletionRequest struct {
	UserID  uuid.UUID `validate:"required"`
	HabitID uuid.UUID `validate:"required"`
	Date    string    `validate:"required,datetime=2006-01-02"`
}

type DateRange struct {
	From string `validate:"required,datetime=2006-01-02"`
	To   string `validate:"required,datetime=2006-01-02"`
}

type CompletionServiceI interface {
	// Records completion, advances habit and character XP, levels up linked skills on a boundary
	CompleteHabit(ctx context.Context, req CompletionRequest) (*entity.Habit, error)
	// Exact inverse of CompleteHabit
	UncompleteHabit(ctx context.Context, req CompletionRequest) error
	// All completions of user's habits, newest first
	GetCompletions(ctx context.Context, uid uuid.UUID) ([]entity.Completion, error)
	GetHabitCompletions(ctx context.Context, uid, habitID uuid.UUID, period DateRange) ([]entity.Completion, error)
}

type CreateSkillRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

type SkillsServiceI interface {
	CreateSkill(ctx context.Context, uid uuid.UUID, req *CreateSkillRequest) (*entity.Skill, error)
	GetSkills(ctx context.Context, uid uuid.UUID) ([]*entity.Skill, error)
	GetSkill(ctx context.Context, uid, id uuid.UUID) (*entity.Skill, error)
	UpdateSkill(ctx context.Context, uid, id uuid.UUID, patch entity.SkillPatch) (*entity.Skill, error)
	DeleteSkill(ctx context.Context, uid, id uuid.UUID) (*entity.Skill, error)
}

type CreateHabitRequest struct {
	Name     string      `json:"name" validate:"required,notblank,max=100"`
	SkillIDs []uuid.UUID `json:"skill_ids"`
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, uid, id uuid.UUID) (*entity.Habit, error)
	// Patches name and/or replaces the whole linked skill set
	UpdateHabit(ctx context.Context, uid, id uuid.UUID, patch entity.HabitPatch) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, uid, id uuid.UUID) (*entity.Habit, error)
}

type CharacterServiceI interface {
	// Creates the default character on first access
	GetCharacter(ctx context.Context, uid uuid.UUID) (*entity.Character, error)
	UpdateCharacter(ctx context.Context, uid uuid.UUID, patch entity.CharacterPatch) (*entity.Character, error)
}

type HealthCheckerI interface {
	Ping(ctx context.Context) error
}
