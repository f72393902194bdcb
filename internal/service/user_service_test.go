package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	us := service.NewUserService(store)
	email, password := "Hero@Example.com ", "secret1"

	var uid uuid.UUID
	t.Run("register creates character", func(t *testing.T) {
		user, err := us.Register(ctx, &service.RegisterRequest{Email: email, Password: password})
		require.NoError(t, err)
		uid = user.ID
		assert.Equal(t, "hero@example.com", user.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
		c, err := store.Characters().GetByUserID(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, service.DefaultCharacterName, c.Name)
	})
	t.Run("register twice", func(t *testing.T) {
		_, err := us.Register(ctx, &service.RegisterRequest{Email: "hero@example.com", Password: password})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("register invalid", func(t *testing.T) {
		_, err := us.Register(ctx, &service.RegisterRequest{Email: "not-an-email", Password: password})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		_, err = us.Register(ctx, &service.RegisterRequest{Email: "short@example.com", Password: "12345"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("login", func(t *testing.T) {
		user, err := us.Login(ctx, "hero@example.com", password)
		require.NoError(t, err)
		assert.Equal(t, uid, user.ID)
	})
	t.Run("login wrong password", func(t *testing.T) {
		_, err := us.Login(ctx, "hero@example.com", "wrong-password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("login unknown email", func(t *testing.T) {
		_, err := us.Login(ctx, "nobody@example.com", password)
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("get by id", func(t *testing.T) {
		user, err := us.GetByID(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, "hero@example.com", user.Email)
		_, err = us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("delete account", func(t *testing.T) {
		hid := store.addHabit(uid, "Exercise", 0)
		assert.ErrorIs(t, us.DeleteAccount(ctx, uid, "wrong-password"), errorvalues.ErrWrongCredentials)
		require.NoError(t, us.DeleteAccount(ctx, uid, password))
		_, err := store.Habits().GetByID(ctx, hid, uid)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
		_, err = store.Characters().GetByUserID(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrCharacterNotFound)
	})
}
