package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/pkg/entity"
)

type CharacterService struct {
	store repository.StoreI
}

func NewCharacterService(store repository.StoreI) *CharacterService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	InitValidator()
	return &CharacterService{
		store: store,
	}
}

func (cs *CharacterService) GetCharacter(ctx context.Context, uid uuid.UUID) (*entity.Character, error) {
	character, err := cs.store.Characters().GetByUserID(ctx, uid)
	if errors.Is(err, errorvalues.ErrCharacterNotFound) {
		if err = cs.store.Characters().Ensure(ctx, uid, DefaultCharacterName); err != nil {
			return nil, passOrWrap("characters repository", err, errorvalues.ErrUserNotFound)
		}
		character, err = cs.store.Characters().GetByUserID(ctx, uid)
	}
	if err != nil {
		return nil, passOrWrap("characters repository", err, errorvalues.ErrCharacterNotFound)
	}
	return character, nil
}

func (cs *CharacterService) UpdateCharacter(ctx context.Context, uid uuid.UUID, patch entity.CharacterPatch) (*entity.Character, error) {
	if patch.IsEmpty() {
		return nil, errorvalues.ErrNoFieldsToUpdate
	}
	patch.Name = trimmed(patch.Name)
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	character, err := cs.store.Characters().Update(ctx, uid, patch)
	if errors.Is(err, errorvalues.ErrCharacterNotFound) {
		if err = cs.store.Characters().Ensure(ctx, uid, DefaultCharacterName); err != nil {
			return nil, passOrWrap("characters repository", err, errorvalues.ErrUserNotFound)
		}
		character, err = cs.store.Characters().Update(ctx, uid, patch)
	}
	if err != nil {
		return nil, passOrWrap("characters repository", err, errorvalues.ErrCharacterNotFound, errorvalues.ErrNoFieldsToUpdate)
	}
	return character, nil
}
