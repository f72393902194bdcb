package service_test

import (
	"context"
	"testing"

	errorvalues "github.com/limbo/habbit/internal/error_values"
	"github.com/limbo/habbit/internal/service"
	"github.com/limbo/habbit/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCharacter(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	uid := store.addUser("hero@local")
	delete(store.st.characters, uid)
	cs := service.NewCharacterService(store)

	c, err := cs.GetCharacter(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, service.DefaultCharacterName, c.Name)
	assert.Equal(t, 0, c.TotalXP)

	again, err := cs.GetCharacter(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, c.ID, again.ID)
}

func TestUpdateCharacter(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	uid := store.addUser("hero@local")
	cs := service.NewCharacterService(store)

	testCases := []struct {
		Desc  string
		Patch entity.CharacterPatch
		Error error
	}{
		{Desc: "slots and name", Patch: entity.CharacterPatch{Name: ptr(" Knight "), Head: ptr(2), Weapon: ptr(4)}},
		{Desc: "slot above range", Patch: entity.CharacterPatch{Legs: ptr(5)}, Error: errorvalues.ErrValidation},
		{Desc: "negative slot", Patch: entity.CharacterPatch{Chest: ptr(-1)}, Error: errorvalues.ErrValidation},
		{Desc: "blank name", Patch: entity.CharacterPatch{Name: ptr("  ")}, Error: errorvalues.ErrValidation},
		{Desc: "nothing to update", Patch: entity.CharacterPatch{}, Error: errorvalues.ErrNoFieldsToUpdate},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			c, err := cs.UpdateCharacter(ctx, uid, tc.Patch)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Knight", c.Name)
			assert.Equal(t, 2, c.Head)
			assert.Equal(t, 4, c.Weapon)
			assert.Equal(t, 0, c.Legs)
		})
	}

	t.Run("total xp untouched by update", func(t *testing.T) {
		require.NoError(t, store.Characters().AddXP(ctx, uid, 7))
		c, err := cs.UpdateCharacter(ctx, uid, entity.CharacterPatch{Accessory: ptr(1)})
		require.NoError(t, err)
		assert.Equal(t, 7, c.TotalXP)
	})
	t.Run("lazily created on update", func(t *testing.T) {
		other := store.addUser("other@local")
		delete(store.st.characters, other)
		c, err := cs.UpdateCharacter(ctx, other, entity.CharacterPatch{Head: ptr(1)})
		require.NoError(t, err)
		assert.Equal(t, 1, c.Head)
		assert.Equal(t, service.DefaultCharacterName, c.Name)
	})
}
