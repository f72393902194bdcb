package errorvalues

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrCharacterNotFound = errors.New("character not found")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrHabitNotFound     = errors.New("habit not found")

	ErrAlreadyCompleted = errors.New("habit already completed for this date")
	ErrNotCompleted     = errors.New("habit not completed for this date")

	ErrValidation       = errors.New("validation error")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// SkillNotFoundError names the skill that failed an ownership check.
// It matches ErrSkillNotFound with errors.Is.
type SkillNotFoundError struct {
	ID uuid.UUID
}

func (e *SkillNotFoundError) Error() string {
	return "skill " + e.ID.String() + " not found"
}

func (e *SkillNotFoundError) Is(target error) bool {
	return target == ErrSkillNotFound
}
