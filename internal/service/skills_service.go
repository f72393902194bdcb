package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/pkg/entity"
)

type SkillsService struct {
	store repository.StoreI
}

func NewSkillsService(store repository.StoreI) *SkillsService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	InitValidator()
	return &SkillsService{
		store: store,
	}
}

func (ss *SkillsService) CreateSkill(ctx context.Context, uid uuid.UUID, req *CreateSkillRequest) (*entity.Skill, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	skill := &entity.Skill{
		UserID: uid,
		Name:   req.Name,
	}
	if err := ss.store.Skills().Create(ctx, skill); err != nil {
		return nil, passOrWrap("skills repository", err, errorvalues.ErrUserNotFound)
	}
	return skill.WithTier(), nil
}

func (ss *SkillsService) GetSkills(ctx context.Context, uid uuid.UUID) ([]*entity.Skill, error) {
	skills, err := ss.store.Skills().ListByUser(ctx, uid)
	if err != nil {
		return nil, passOrWrap("skills repository", err)
	}
	for _, s := range skills {
		s.WithTier()
	}
	return skills, nil
}

func (ss *SkillsService) GetSkill(ctx context.Context, uid, id uuid.UUID) (*entity.Skill, error) {
	skill, err := ss.store.Skills().GetByID(ctx, id, uid)
	if err != nil {
		return nil, passOrWrap("skills repository", err, errorvalues.ErrSkillNotFound)
	}
	return skill.WithTier(), nil
}

func (ss *SkillsService) UpdateSkill(ctx context.Context, uid, id uuid.UUID, patch entity.SkillPatch) (*entity.Skill, error) {
	if patch.IsEmpty() {
		return nil, errorvalues.ErrNoFieldsToUpdate
	}
	patch.Name = trimmed(patch.Name)
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	skill, err := ss.store.Skills().Update(ctx, id, uid, patch)
	if err != nil {
		return nil, passOrWrap("skills repository", err, errorvalues.ErrSkillNotFound, errorvalues.ErrNoFieldsToUpdate)
	}
	return skill.WithTier(), nil
}

func (ss *SkillsService) DeleteSkill(ctx context.Context, uid, id uuid.UUID) (*entity.Skill, error) {
	skill, err := ss.store.Skills().Delete(ctx, id, uid)
	if err != nil {
		return nil, passOrWrap("skills repository", err, errorvalues.ErrSkillNotFound)
	}
	return skill.WithTier(), nil
}
