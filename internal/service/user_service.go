package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/pkg/entity"
)

type UserService struct {
	store repository.StoreI
}

func NewUserService(store repository.StoreI) *UserService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	InitValidator()
	return &UserService{
		store: store,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}

	uow, err := us.store.Begin(ctx)
	if err != nil {
		return nil, passOrWrap("users store", err)
	}
	defer uow.Rollback(ctx)

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	user.ID, err = uow.Users().Create(ctx, user)
	if err != nil {
		return nil, passOrWrap("users repository", err, errorvalues.ErrUserExists)
	}
	if err = uow.Characters().Ensure(ctx, user.ID, DefaultCharacterName); err != nil {
		return nil, passOrWrap("characters repository", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, passOrWrap("users store", err)
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.store.Users().FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, passOrWrap("users repository", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.store.Users().FindByID(ctx, id)
	if err != nil {
		return nil, passOrWrap("users repository", err, errorvalues.ErrUserNotFound)
	}
	return user, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.store.Users().FindByID(ctx, id)
	if err != nil {
		return passOrWrap("users repository", err, errorvalues.ErrUserNotFound)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return errorvalues.ErrWrongCredentials
	}
	if err = us.store.Users().Delete(ctx, user.ID); err != nil {
		return passOrWrap("users repository", err, errorvalues.ErrUserNotFound)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
