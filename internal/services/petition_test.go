package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"petitions-backend/internal/models"
	"petitions-backend/internal/services"
)

func newPetitionServiceMocks(t *testing.T) (*services.PetitionService, *services.MockPetitionReader, *services.MockPetitionWriter, *services.MockCategoryReader, *services.MockCategoryCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockReader := services.NewMockPetitionReader(ctrl)
	mockWriter := services.NewMockPetitionWriter(ctrl)
	mockCategories := services.NewMockCategoryReader(ctrl)
	mockCache := services.NewMockCategoryCache(ctrl)

	svc := services.NewPetitionService(mockReader, mockWriter, mockCategories, mockCache)
	return svc, mockReader, mockWriter, mockCategories, mockCache
}

func TestPetitionService_Categories(t *testing.T) {
	ctx := context.Background()
	want := []models.CategoryDB{{CategoryID: 1, Name: "Environment"}}

	t.Run("cache hit skips the store", func(t *testing.T) {
		svc, _, _, _, mockCache := newPetitionServiceMocks(t)

		mockCache.EXPECT().Get(gomock.Any()).Return(want, nil)

		got, err := svc.Categories(ctx)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("cache miss reads store and warms cache", func(t *testing.T) {
		svc, _, _, mockCategories, mockCache := newPetitionServiceMocks(t)

		mockCache.EXPECT().Get(gomock.Any()).Return(nil, nil)
		mockCategories.EXPECT().List(gomock.Any()).Return(want, nil)
		mockCache.EXPECT().Set(gomock.Any(), want).Return(nil)

		got, err := svc.Categories(ctx)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("nil cache reads store directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockPetitionReader(ctrl)
		mockWriter := services.NewMockPetitionWriter(ctrl)
		mockCategories := services.NewMockCategoryReader(ctrl)
		svc := services.NewPetitionService(mockReader, mockWriter, mockCategories, nil)

		mockCategories.EXPECT().List(gomock.Any()).Return(want, nil)

		got, err := svc.Categories(ctx)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func listFixture() []models.PetitionDB {
	return []models.PetitionDB{
		{PetitionID: 1, Title: "Ban plastic bags", Category: "Environment", AuthorID: 10, SignatureCount: 5},
		{PetitionID: 2, Title: "Another library", Category: "Education", AuthorID: 11, SignatureCount: 12},
		{PetitionID: 3, Title: "Clean the river", Category: "Environment", AuthorID: 10, SignatureCount: 8},
	}
}

func TestPetitionService_List(t *testing.T) {
	ctx := context.Background()

	intPtr := func(i int64) *int64 { return &i }

	titles := func(petitions []models.PetitionDB) []string {
		out := make([]string, len(petitions))
		for i, p := range petitions {
			out[i] = p.Title
		}
		return out
	}

	t.Run("default sort is signatures descending", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().List(gomock.Any()).Return(listFixture(), nil)

		got, err := svc.List(ctx, services.ListParams{})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Another library", "Clean the river", "Ban plastic bags"}, titles(got))
	})

	t.Run("alphabetical ascending", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().List(gomock.Any()).Return(listFixture(), nil)

		got, err := svc.List(ctx, services.ListParams{SortBy: services.SortAlphabeticalAsc})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Another library", "Ban plastic bags", "Clean the river"}, titles(got))
	})

	t.Run("unknown sort key", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().List(gomock.Any()).Return(listFixture(), nil)

		_, err := svc.List(ctx, services.ListParams{SortBy: "NEWEST"})
		assert.ErrorIs(t, err, services.ErrInvalidSortKey)
	})

	t.Run("search is case-insensitive substring on title", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().List(gomock.Any()).Return(listFixture(), nil)

		got, err := svc.List(ctx, services.ListParams{Q: "RIVER"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Clean the river"}, titles(got))
	})

	t.Run("filter by category", func(t *testing.T) {
		svc, mockReader, _, _, mockCache := newPetitionServiceMocks(t)
		mockReader.EXPECT().List(gomock.Any()).Return(listFixture(), nil)
		mockCache.EXPECT().Get(gomock.Any()).Return([]models.CategoryDB{
			{CategoryID: 1, Name: "Environment"},
			{CategoryID: 2, Name: "Education"},
		}, nil)

		got, err := svc.List(ctx, services.ListParams{CategoryID: intPtr(1)})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Clean the river", "Ban plastic bags"}, titles(got))
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, mockReader, _, _, mockCache := newPetitionServiceMocks(t)
		mockReader.EXPECT().List(gomock.Any()).Return(listFixture(), nil)
		mockCache.EXPECT().Get(gomock.Any()).Return([]models.CategoryDB{
			{CategoryID: 1, Name: "Environment"},
		}, nil)

		_, err := svc.List(ctx, services.ListParams{CategoryID: intPtr(42)})
		assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	})

	t.Run("filter by author", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().List(gomock.Any()).Return(listFixture(), nil)

		got, err := svc.List(ctx, services.ListParams{AuthorID: intPtr(11)})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Another library"}, titles(got))
	})

	t.Run("pagination clamps out-of-range values", func(t *testing.T) {
		count := 10
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().List(gomock.Any()).Return(listFixture(), nil)

		got, err := svc.List(ctx, services.ListParams{StartIndex: 2, Count: &count})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("start index past the end yields empty", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().List(gomock.Any()).Return(listFixture(), nil)

		got, err := svc.List(ctx, services.ListParams{StartIndex: 100})
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestPetitionService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&models.PetitionDB{PetitionID: 1, Title: "Ban plastic bags"}, nil)

		petition, err := svc.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Ban plastic bags", petition.Title)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := svc.Get(ctx, 99)
		assert.ErrorIs(t, err, services.ErrPetitionNotFound)
	})
}

func TestPetitionService_Create(t *testing.T) {
	ctx := context.Background()
	categories := []models.CategoryDB{{CategoryID: 1, Name: "Environment"}}

	t.Run("success", func(t *testing.T) {
		svc, _, mockWriter, _, mockCache := newPetitionServiceMocks(t)
		mockCache.EXPECT().Get(gomock.Any()).Return(categories, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), "Save the kakapo", "desc", int64(1), int64(10), gomock.Any(), gomock.Any()).
			Return(int64(5), nil)

		id, err := svc.Create(ctx, 10, "Save the kakapo", "desc", 1, time.Now().AddDate(0, 1, 0))
		assert.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, _, _, _, mockCache := newPetitionServiceMocks(t)
		mockCache.EXPECT().Get(gomock.Any()).Return(categories, nil)

		_, err := svc.Create(ctx, 10, "T", "d", 42, time.Now().AddDate(0, 1, 0))
		assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	})

	t.Run("closing date in the past", func(t *testing.T) {
		svc, _, _, _, mockCache := newPetitionServiceMocks(t)
		mockCache.EXPECT().Get(gomock.Any()).Return(categories, nil)

		_, err := svc.Create(ctx, 10, "T", "d", 1, time.Now().Add(-time.Hour))
		assert.ErrorIs(t, err, services.ErrClosingDateInPast)
	})
}

func TestPetitionService_Update(t *testing.T) {
	ctx := context.Background()
	categories := []models.CategoryDB{
		{CategoryID: 1, Name: "Environment"},
		{CategoryID: 2, Name: "Education"},
	}
	stored := func() *models.PetitionDB {
		return &models.PetitionDB{
			PetitionID:  5,
			Title:       "Old title",
			Description: "Old description",
			CategoryID:  1,
			AuthorID:    10,
			ClosingDate: time.Now().AddDate(0, 1, 0),
		}
	}

	strPtr := func(s string) *string { return &s }

	t.Run("merges supplied fields", func(t *testing.T) {
		svc, mockReader, mockWriter, _, mockCache := newPetitionServiceMocks(t)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored(), nil)
		mockCache.EXPECT().Get(gomock.Any()).Return(categories, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), int64(5), "New title", "Old description", int64(1), gomock.Any()).
			Return(nil)

		err := svc.Update(ctx, 10, 5, services.UpdatePetitionParams{Title: strPtr("New title")})
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		err := svc.Update(ctx, 10, 99, services.UpdatePetitionParams{Title: strPtr("X")})
		assert.ErrorIs(t, err, services.ErrPetitionNotFound)
	})

	t.Run("closing date in the past", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored(), nil)

		err := svc.Update(ctx, 10, 5, services.UpdatePetitionParams{ClosingDate: &past})
		assert.ErrorIs(t, err, services.ErrClosingDateInPast)
	})

	t.Run("not the author", func(t *testing.T) {
		svc, mockReader, _, _, mockCache := newPetitionServiceMocks(t)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored(), nil)
		mockCache.EXPECT().Get(gomock.Any()).Return(categories, nil)

		err := svc.Update(ctx, 11, 5, services.UpdatePetitionParams{Title: strPtr("X")})
		assert.ErrorIs(t, err, services.ErrNotAuthor)
	})

	t.Run("unknown category", func(t *testing.T) {
		badCategory := int64(42)
		svc, mockReader, _, _, mockCache := newPetitionServiceMocks(t)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored(), nil)
		mockCache.EXPECT().Get(gomock.Any()).Return(categories, nil)

		err := svc.Update(ctx, 10, 5, services.UpdatePetitionParams{CategoryID: &badCategory})
		assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	})
}

func TestPetitionService_Delete(t *testing.T) {
	ctx := context.Background()
	stored := &models.PetitionDB{PetitionID: 5, AuthorID: 10}

	t.Run("success", func(t *testing.T) {
		svc, mockReader, mockWriter, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 10, 5))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(ctx, 10, 99), services.ErrPetitionNotFound)
	})

	t.Run("not the author", func(t *testing.T) {
		svc, mockReader, _, _, _ := newPetitionServiceMocks(t)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)

		assert.ErrorIs(t, svc.Delete(ctx, 11, 5), services.ErrNotAuthor)
	})
}
