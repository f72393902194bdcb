package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-day format completions are keyed by
const DateLayout = "2006-01-02"

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Character struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Name      string    `json:"name"`
	Head      int       `json:"head"`
	Chest     int       `json:"chest"`
	Legs      int       `json:"legs"`
	Weapon    int       `json:"weapon"`
	Accessory int       `json:"accessory"`
	TotalXP   int       `json:"total_xp"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CharacterPatch holds the user-editable character fields. Nil fields are left unchanged.
// Total XP is deliberately absent: it only moves through habit completions.
type CharacterPatch struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,notblank,max=50"`
	Head      *int    `json:"head,omitempty" validate:"omitempty,min=0,max=4"`
	Chest     *int    `json:"chest,omitempty" validate:"omitempty,min=0,max=4"`
	Legs      *int    `json:"legs,omitempty" validate:"omitempty,min=0,max=4"`
	Weapon    *int    `json:"weapon,omitempty" validate:"omitempty,min=0,max=4"`
	Accessory *int    `json:"accessory,omitempty" validate:"omitempty,min=0,max=4"`
}

func (p CharacterPatch) IsEmpty() bool {
	return p.Name == nil && p.Head == nil && p.Chest == nil && p.Legs == nil && p.Weapon == nil && p.Accessory == nil
}

type Skill struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Cap       int       `json:"cap"`
	Progress  float64   `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SkillPatch is a partial skill update. Nil fields are left unchanged.
type SkillPatch struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,notblank,max=100"`
	Level *int    `json:"level,omitempty" validate:"omitempty,min=0"`
}

func (p SkillPatch) IsEmpty() bool {
	return p.Name == nil && p.Level == nil
}

type Habit struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"uid"`
	Name      string      `json:"name"`
	XP        int         `json:"xp"`
	SkillIDs  []uuid.UUID `json:"skill_ids"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// HabitPatch is a partial habit update. A non-nil SkillIDs replaces the whole link set.
type HabitPatch struct {
	Name     *string      `json:"name,omitempty" validate:"omitempty,notblank,max=100"`
	SkillIDs *[]uuid.UUID `json:"skill_ids,omitempty"`
}

func (p HabitPatch) IsEmpty() bool {
	return p.Name == nil && p.SkillIDs == nil
}

// Completion marks a habit done on one calendar day (Date is YYYY-MM-DD)
type Completion struct {
	ID        int64     `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	Date      string    `json:"completed_date"`
	CreatedAt time.Time `json:"created_at"`
}
