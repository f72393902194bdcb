package service_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/pkg/entity"
)

// fakeStore keeps everything in memory. A unit of work runs on a copy of the
// state that replaces the committed one on Commit, and units of work are serialized.
type fakeStore struct {
	txMu sync.Mutex
	st   *fakeState
}

type completionKey struct {
	habitID uuid.UUID
	date    string
}

type fakeState struct {
	users       map[uuid.UUID]entity.User
	characters  map[uuid.UUID]entity.Character
	skills      map[uuid.UUID]entity.Skill
	habits      map[uuid.UUID]entity.Habit
	links       map[uuid.UUID][]uuid.UUID
	completions map[completionKey]entity.Completion
	seq         int64
}

var baseTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newFakeStore() *fakeStore {
	return &fakeStore{st: &fakeState{
		users:       map[uuid.UUID]entity.User{},
		characters:  map[uuid.UUID]entity.Character{},
		skills:      map[uuid.UUID]entity.Skill{},
		habits:      map[uuid.UUID]entity.Habit{},
		links:       map[uuid.UUID][]uuid.UUID{},
		completions: map[completionKey]entity.Completion{},
	}}
}

func (s *fakeState) clone() *fakeState {
	links := make(map[uuid.UUID][]uuid.UUID, len(s.links))
	for k, v := range s.links {
		links[k] = slices.Clone(v)
	}
	return &fakeState{
		users:       maps.Clone(s.users),
		characters:  maps.Clone(s.characters),
		skills:      maps.Clone(s.skills),
		habits:      maps.Clone(s.habits),
		links:       links,
		completions: maps.Clone(s.completions),
		seq:         s.seq,
	}
}

func (s *fakeState) tick() time.Time {
	s.seq++
	return baseTime.Add(time.Duration(s.seq) * time.Second)
}

func (fs *fakeStore) Users() repository.UsersRepositoryI             { return fakeUsers{fs.st} }
func (fs *fakeStore) Characters() repository.CharactersRepositoryI   { return fakeCharacters{fs.st} }
func (fs *fakeStore) Skills() repository.SkillsRepositoryI           { return fakeSkills{fs.st} }
func (fs *fakeStore) Habits() repository.HabitsRepositoryI           { return fakeHabits{fs.st} }
func (fs *fakeStore) HabitSkills() repository.HabitSkillsRepositoryI { return fakeLinks{fs.st} }
func (fs *fakeStore) Completions() repository.CompletionsRepositoryI { return fakeCompletions{fs.st} }
func (fs *fakeStore) Ping(ctx context.Context) error                 { return nil }

func (fs *fakeStore) Begin(ctx context.Context) (repository.UnitOfWorkI, error) {
	fs.txMu.Lock()
	return &fakeUoW{store: fs, st: fs.st.clone()}, nil
}

type fakeUoW struct {
	store *fakeStore
	st    *fakeState
	done  bool
}

func (u *fakeUoW) Users() repository.UsersRepositoryI             { return fakeUsers{u.st} }
func (u *fakeUoW) Characters() repository.CharactersRepositoryI   { return fakeCharacters{u.st} }
func (u *fakeUoW) Skills() repository.SkillsRepositoryI           { return fakeSkills{u.st} }
func (u *fakeUoW) Habits() repository.HabitsRepositoryI           { return fakeHabits{u.st} }
func (u *fakeUoW) HabitSkills() repository.HabitSkillsRepositoryI { return fakeLinks{u.st} }
func (u *fakeUoW) Completions() repository.CompletionsRepositoryI { return fakeCompletions{u.st} }

func (u *fakeUoW) Commit(ctx context.Context) error {
	if u.done {
		return errors.New("transaction closed")
	}
	u.store.st = u.st
	u.done = true
	u.store.txMu.Unlock()
	return nil
}

func (u *fakeUoW) Rollback(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	u.store.txMu.Unlock()
	return nil
}

// seeding helpers, operate on committed state

func (fs *fakeStore) addUser(email string) uuid.UUID {
	id := uuid.New()
	fs.st.users[id] = entity.User{ID: id, Email: email, CreatedAt: fs.st.tick()}
	fs.st.characters[id] = entity.Character{ID: fs.st.seq, UserID: id, Name: "Hero", CreatedAt: baseTime, UpdatedAt: baseTime}
	return id
}

func (fs *fakeStore) addSkill(uid uuid.UUID, name string, level int) uuid.UUID {
	id := uuid.New()
	at := fs.st.tick()
	fs.st.skills[id] = entity.Skill{ID: id, UserID: uid, Name: name, Level: level, CreatedAt: at, UpdatedAt: at}
	return id
}

func (fs *fakeStore) addHabit(uid uuid.UUID, name string, xp int, skillIDs ...uuid.UUID) uuid.UUID {
	id := uuid.New()
	at := fs.st.tick()
	fs.st.habits[id] = entity.Habit{ID: id, UserID: uid, Name: name, XP: xp, CreatedAt: at, UpdatedAt: at}
	if len(skillIDs) > 0 {
		fs.st.links[id] = slices.Clone(skillIDs)
	}
	return id
}

func (fs *fakeStore) addCompletion(habitID uuid.UUID, date string) {
	fs.st.completions[completionKey{habitID, date}] = entity.Completion{ID: fs.st.seq, HabitID: habitID, Date: date, CreatedAt: fs.st.tick()}
}

func (fs *fakeStore) habitXP(id uuid.UUID) int            { return fs.st.habits[id].XP }
func (fs *fakeStore) skillLevel(id uuid.UUID) int         { return fs.st.skills[id].Level }
func (fs *fakeStore) totalXP(uid uuid.UUID) int           { return fs.st.characters[uid].TotalXP }
func (fs *fakeStore) completionCount() int                { return len(fs.st.completions) }
func (fs *fakeStore) links(habitID uuid.UUID) []uuid.UUID { return fs.st.links[habitID] }

type fakeUsers struct{ st *fakeState }

func (f fakeUsers) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	for _, u := range f.st.users {
		if u.Email == user.Email {
			return uuid.Nil, errorvalues.ErrUserExists
		}
	}
	id := uuid.New()
	f.st.users[id] = entity.User{ID: id, Email: user.Email, PasswordHash: user.PasswordHash, CreatedAt: f.st.tick()}
	return id, nil
}

func (f fakeUsers) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.st.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (f fakeUsers) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	u, ok := f.st.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return &u, nil
}

func (f fakeUsers) Delete(ctx context.Context, uid uuid.UUID) error {
	if _, ok := f.st.users[uid]; !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(f.st.users, uid)
	delete(f.st.characters, uid)
	for id, s := range f.st.skills {
		if s.UserID == uid {
			fakeSkills{f.st}.Delete(ctx, id, uid)
		}
	}
	for id, h := range f.st.habits {
		if h.UserID == uid {
			fakeHabits{f.st}.Delete(ctx, id, uid)
		}
	}
	return nil
}

type fakeCharacters struct{ st *fakeState }

func (f fakeCharacters) Ensure(ctx context.Context, uid uuid.UUID, name string) error {
	if _, ok := f.st.users[uid]; !ok {
		return errorvalues.ErrUserNotFound
	}
	if _, ok := f.st.characters[uid]; !ok {
		at := f.st.tick()
		f.st.characters[uid] = entity.Character{ID: f.st.seq, UserID: uid, Name: name, CreatedAt: at, UpdatedAt: at}
	}
	return nil
}

func (f fakeCharacters) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Character, error) {
	c, ok := f.st.characters[uid]
	if !ok {
		return nil, errorvalues.ErrCharacterNotFound
	}
	return &c, nil
}

func (f fakeCharacters) Update(ctx context.Context, uid uuid.UUID, patch entity.CharacterPatch) (*entity.Character, error) {
	c, ok := f.st.characters[uid]
	if !ok {
		return nil, errorvalues.ErrCharacterNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	for _, p := range []struct {
		dst *int
		src *int
	}{{&c.Head, patch.Head}, {&c.Chest, patch.Chest}, {&c.Legs, patch.Legs}, {&c.Weapon, patch.Weapon}, {&c.Accessory, patch.Accessory}} {
		if p.src != nil {
			*p.dst = *p.src
		}
	}
	c.UpdatedAt = f.st.tick()
	f.st.characters[uid] = c
	return &c, nil
}

func (f fakeCharacters) AddXP(ctx context.Context, uid uuid.UUID, delta int) error {
	if err := f.Ensure(ctx, uid, "Hero"); err != nil {
		return err
	}
	c := f.st.characters[uid]
	c.TotalXP = max(0, c.TotalXP+delta)
	f.st.characters[uid] = c
	return nil
}

type fakeSkills struct{ st *fakeState }

func (f fakeSkills) Create(ctx context.Context, skill *entity.Skill) error {
	if _, ok := f.st.users[skill.UserID]; !ok {
		return errorvalues.ErrUserNotFound
	}
	skill.ID = uuid.New()
	skill.Level = 0
	skill.CreatedAt = f.st.tick()
	skill.UpdatedAt = skill.CreatedAt
	f.st.skills[skill.ID] = *skill
	return nil
}

func (f fakeSkills) GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Skill, error) {
	s, ok := f.st.skills[id]
	if !ok || s.UserID != uid {
		return nil, errorvalues.ErrSkillNotFound
	}
	return &s, nil
}

func (f fakeSkills) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Skill, error) {
	out := make([]*entity.Skill, 0)
	for _, s := range f.st.skills {
		if s.UserID == uid {
			out = append(out, &s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f fakeSkills) Update(ctx context.Context, id, uid uuid.UUID, patch entity.SkillPatch) (*entity.Skill, error) {
	s, ok := f.st.skills[id]
	if !ok || s.UserID != uid {
		return nil, errorvalues.ErrSkillNotFound
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Level != nil {
		s.Level = *patch.Level
	}
	s.UpdatedAt = f.st.tick()
	f.st.skills[id] = s
	return &s, nil
}

func (f fakeSkills) Delete(ctx context.Context, id, uid uuid.UUID) (*entity.Skill, error) {
	s, ok := f.st.skills[id]
	if !ok || s.UserID != uid {
		return nil, errorvalues.ErrSkillNotFound
	}
	delete(f.st.skills, id)
	for habitID, ids := range f.st.links {
		f.st.links[habitID] = slices.DeleteFunc(ids, func(sid uuid.UUID) bool { return sid == id })
	}
	return &s, nil
}

func (f fakeSkills) FilterOwned(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if s, ok := f.st.skills[id]; ok && s.UserID == uid {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f fakeSkills) ShiftLevels(ctx context.Context, ids []uuid.UUID, delta int) error {
	for _, id := range ids {
		s, ok := f.st.skills[id]
		if !ok {
			continue
		}
		s.Level = max(0, s.Level+delta)
		f.st.skills[id] = s
	}
	return nil
}

type fakeHabits struct{ st *fakeState }

func (f fakeHabits) Create(ctx context.Context, habit *entity.Habit) error {
	if _, ok := f.st.users[habit.UserID]; !ok {
		return errorvalues.ErrUserNotFound
	}
	habit.ID = uuid.New()
	habit.XP = 0
	habit.CreatedAt = f.st.tick()
	habit.UpdatedAt = habit.CreatedAt
	stored := *habit
	stored.SkillIDs = nil
	f.st.habits[habit.ID] = stored
	return nil
}

func (f fakeHabits) GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Habit, error) {
	h, ok := f.st.habits[id]
	if !ok || h.UserID != uid {
		return nil, errorvalues.ErrHabitNotFound
	}
	return &h, nil
}

func (f fakeHabits) GetForUpdate(ctx context.Context, id, uid uuid.UUID) (*entity.Habit, error) {
	return f.GetByID(ctx, id, uid)
}

func (f fakeHabits) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	out := make([]*entity.Habit, 0)
	for _, h := range f.st.habits {
		if h.UserID == uid {
			out = append(out, &h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f fakeHabits) Rename(ctx context.Context, id uuid.UUID, name string) error {
	h, ok := f.st.habits[id]
	if !ok {
		return errorvalues.ErrHabitNotFound
	}
	h.Name = name
	h.UpdatedAt = f.st.tick()
	f.st.habits[id] = h
	return nil
}

func (f fakeHabits) SetXP(ctx context.Context, id uuid.UUID, xp int) error {
	h, ok := f.st.habits[id]
	if !ok {
		return errorvalues.ErrHabitNotFound
	}
	if xp < 0 {
		return errors.New("check constraint violated")
	}
	h.XP = xp
	f.st.habits[id] = h
	return nil
}

func (f fakeHabits) Delete(ctx context.Context, id, uid uuid.UUID) (*entity.Habit, error) {
	h, ok := f.st.habits[id]
	if !ok || h.UserID != uid {
		return nil, errorvalues.ErrHabitNotFound
	}
	delete(f.st.habits, id)
	delete(f.st.links, id)
	for k := range f.st.completions {
		if k.habitID == id {
			delete(f.st.completions, k)
		}
	}
	return &h, nil
}

type fakeLinks struct{ st *fakeState }

func (f fakeLinks) ListSkillIDs(ctx context.Context, habitID uuid.UUID) ([]uuid.UUID, error) {
	return append([]uuid.UUID{}, f.st.links[habitID]...), nil
}

func (f fakeLinks) ListByUser(ctx context.Context, uid uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	out := map[uuid.UUID][]uuid.UUID{}
	for habitID, ids := range f.st.links {
		if h, ok := f.st.habits[habitID]; ok && h.UserID == uid && len(ids) > 0 {
			out[habitID] = slices.Clone(ids)
		}
	}
	return out, nil
}

func (f fakeLinks) Replace(ctx context.Context, habitID uuid.UUID, skillIDs []uuid.UUID) error {
	for _, id := range skillIDs {
		if _, ok := f.st.skills[id]; !ok {
			return errorvalues.ErrSkillNotFound
		}
	}
	f.st.links[habitID] = slices.Clone(skillIDs)
	return nil
}

type fakeCompletions struct{ st *fakeState }

func (f fakeCompletions) Create(ctx context.Context, habitID uuid.UUID, date string) error {
	if _, ok := f.st.habits[habitID]; !ok {
		return errorvalues.ErrHabitNotFound
	}
	key := completionKey{habitID, date}
	if _, ok := f.st.completions[key]; ok {
		return errorvalues.ErrAlreadyCompleted
	}
	at := f.st.tick()
	f.st.completions[key] = entity.Completion{ID: f.st.seq, HabitID: habitID, Date: date, CreatedAt: at}
	return nil
}

func (f fakeCompletions) Delete(ctx context.Context, habitID uuid.UUID, date string) error {
	key := completionKey{habitID, date}
	if _, ok := f.st.completions[key]; !ok {
		return errorvalues.ErrNotCompleted
	}
	delete(f.st.completions, key)
	return nil
}

func (f fakeCompletions) Exists(ctx context.Context, habitID uuid.UUID, date string) (bool, error) {
	_, ok := f.st.completions[completionKey{habitID, date}]
	return ok, nil
}

func (f fakeCompletions) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Completion, error) {
	out := make([]entity.Completion, 0)
	for k, c := range f.st.completions {
		if h, ok := f.st.habits[k.habitID]; ok && h.UserID == uid {
			out = append(out, c)
		}
	}
	sortCompletions(out)
	return out, nil
}

func (f fakeCompletions) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to string) ([]entity.Completion, error) {
	out := make([]entity.Completion, 0)
	for k, c := range f.st.completions {
		if k.habitID == habitID && k.date >= from && k.date <= to {
			out = append(out, c)
		}
	}
	sortCompletions(out)
	return out, nil
}

func sortCompletions(cs []entity.Completion) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Date != cs[j].Date {
			return cs[i].Date > cs[j].Date
		}
		return cs[i].ID > cs[j].ID
	})
}
