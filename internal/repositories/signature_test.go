package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignatureRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userRepo := NewUserWriteRepository(db)
	authorID, categoryID := seedUserAndCategory(t, db)

	now := time.Now().UTC()
	petitionID, err := NewPetitionWriteRepository(db).Save(ctx, "Petition", "d", categoryID, authorID, now, now.AddDate(0, 1, 0))
	assert.NoError(t, err)

	city := "Dunedin"
	firstID, err := userRepo.Save(ctx, "First Signer", "first@example.com", "hash", &city, nil)
	assert.NoError(t, err)
	secondID, err := userRepo.Save(ctx, "Second Signer", "second@example.com", "hash", nil, nil)
	assert.NoError(t, err)

	writeRepo := NewSignatureWriteRepository(db)
	readRepo := NewSignatureReadRepository(db)

	err = writeRepo.Save(ctx, firstID, petitionID, now.Add(-time.Hour))
	assert.NoError(t, err)
	err = writeRepo.Save(ctx, secondID, petitionID, now)
	assert.NoError(t, err)

	t.Run("DuplicateSign", func(t *testing.T) {
		err := writeRepo.Save(ctx, firstID, petitionID, now)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("ListOldestFirst", func(t *testing.T) {
		signatures, err := readRepo.ListByPetition(ctx, petitionID)
		assert.NoError(t, err)
		assert.Len(t, signatures, 2)
		assert.Equal(t, "First Signer", signatures[0].Name)
		assert.Equal(t, "Dunedin", *signatures[0].City)
		assert.Equal(t, "Second Signer", signatures[1].Name)
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := readRepo.Exists(ctx, firstID, petitionID)
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = readRepo.Exists(ctx, authorID, petitionID)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Delete", func(t *testing.T) {
		err := writeRepo.Delete(ctx, secondID, petitionID)
		assert.NoError(t, err)

		exists, err := readRepo.Exists(ctx, secondID, petitionID)
		assert.NoError(t, err)
		assert.False(t, exists)

		signatures, err := readRepo.ListByPetition(ctx, petitionID)
		assert.NoError(t, err)
		assert.Len(t, signatures, 1)
	})
}
