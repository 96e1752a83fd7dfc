package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
)

// Error variables
var (
	ErrPetitionNotFound  = errors.New("petition not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidSortKey    = errors.New("invalid sort key")
	ErrClosingDateInPast = errors.New("closing date must be in the future")
	ErrNotAuthor         = errors.New("caller is not the petition author")
)

// Supported sort keys for petition listings.
const (
	SortSignaturesDesc   = "SIGNATURES_DESC"
	SortSignaturesAsc    = "SIGNATURES_ASC"
	SortAlphabeticalAsc  = "ALPHABETICAL_ASC"
	SortAlphabeticalDesc = "ALPHABETICAL_DESC"
)

// PetitionReader defines read-only operations for petitions.
type PetitionReader interface {
	List(ctx context.Context) ([]models.PetitionDB, error)
	GetByID(ctx context.Context, petitionID int64) (*models.PetitionDB, error)
}

// PetitionWriter defines write operations for petitions.
type PetitionWriter interface {
	Save(ctx context.Context, title, description string, categoryID, authorID int64, createdDate, closingDate time.Time) (int64, error)
	Update(ctx context.Context, petitionID int64, title, description string, categoryID int64, closingDate time.Time) error
	Delete(ctx context.Context, petitionID int64) error
}

// CategoryReader defines read-only operations for categories.
type CategoryReader interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
}

// CategoryCache caches the category list.
type CategoryCache interface {
	Get(ctx context.Context) ([]models.CategoryDB, error)
	Set(ctx context.Context, categories []models.CategoryDB) error
}

// PetitionService handles petition listing, lookup and mutation.
type PetitionService struct {
	reader     PetitionReader
	writer     PetitionWriter
	categories CategoryReader
	cache      CategoryCache
}

// NewPetitionService creates a new PetitionService instance. cache may be
// nil, in which case categories are always read from the store.
func NewPetitionService(reader PetitionReader, writer PetitionWriter, categories CategoryReader, cache CategoryCache) *PetitionService {
	return &PetitionService{
		reader:     reader,
		writer:     writer,
		categories: categories,
		cache:      cache,
	}
}

// Categories returns the category reference data, served from the cache
// when warm.
func (svc *PetitionService) Categories(ctx context.Context) ([]models.CategoryDB, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx)
		if err != nil {
			logger.Log.Warnw("category cache read failed", "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	categories, err := svc.categories.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, categories); err != nil {
			logger.Log.Warnw("category cache write failed", "err", err)
		}
	}

	return categories, nil
}

func (svc *PetitionService) categoryByID(ctx context.Context, categoryID int64) (*models.CategoryDB, error) {
	categories, err := svc.Categories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].CategoryID == categoryID {
			return &categories[i], nil
		}
	}
	return nil, nil
}

// ListParams carries the query parameters of a petition listing.
type ListParams struct {
	Q          string
	CategoryID *int64
	AuthorID   *int64
	SortBy     string
	StartIndex int
	Count      *int
}

// List loads all petitions, sorts them by the requested key, applies the
// search, category and author filters, and slices out the requested page.
// Out-of-range pagination values are clamped.
func (svc *PetitionService) List(ctx context.Context, params ListParams) ([]models.PetitionDB, error) {
	petitions, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list petitions", "err", err)
		return nil, err
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = SortSignaturesDesc
	}
	switch sortBy {
	case SortSignaturesDesc:
		sort.SliceStable(petitions, func(i, j int) bool {
			return petitions[i].SignatureCount > petitions[j].SignatureCount
		})
	case SortSignaturesAsc:
		sort.SliceStable(petitions, func(i, j int) bool {
			return petitions[i].SignatureCount < petitions[j].SignatureCount
		})
	case SortAlphabeticalAsc:
		sort.SliceStable(petitions, func(i, j int) bool {
			return petitions[i].Title < petitions[j].Title
		})
	case SortAlphabeticalDesc:
		sort.SliceStable(petitions, func(i, j int) bool {
			return petitions[i].Title > petitions[j].Title
		})
	default:
		return nil, ErrInvalidSortKey
	}

	if params.Q != "" {
		q := strings.ToLower(params.Q)
		petitions = filterPetitions(petitions, func(p models.PetitionDB) bool {
			return strings.Contains(strings.ToLower(p.Title), q)
		})
	}

	if params.CategoryID != nil {
		category, err := svc.categoryByID(ctx, *params.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		petitions = filterPetitions(petitions, func(p models.PetitionDB) bool {
			return p.Category == category.Name
		})
	}

	if params.AuthorID != nil {
		petitions = filterPetitions(petitions, func(p models.PetitionDB) bool {
			return p.AuthorID == *params.AuthorID
		})
	}

	start := params.StartIndex
	if start < 0 {
		start = 0
	}
	if start > len(petitions) {
		start = len(petitions)
	}
	petitions = petitions[start:]

	if params.Count != nil {
		count := *params.Count
		if count < 0 {
			count = 0
		}
		if count > len(petitions) {
			count = len(petitions)
		}
		petitions = petitions[:count]
	}

	return petitions, nil
}

func filterPetitions(petitions []models.PetitionDB, keep func(models.PetitionDB) bool) []models.PetitionDB {
	filtered := petitions[:0]
	for _, p := range petitions {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Get returns the petition with the given id.
func (svc *PetitionService) Get(ctx context.Context, petitionID int64) (*models.PetitionDB, error) {
	petition, err := svc.reader.GetByID(ctx, petitionID)
	if err != nil {
		logger.Log.Errorw("failed to get petition", "err", err)
		return nil, err
	}
	if petition == nil {
		return nil, ErrPetitionNotFound
	}
	return petition, nil
}

// Create persists a new petition authored by authorID and returns its id.
// The category must exist and the closing date must be strictly in the
// future.
func (svc *PetitionService) Create(ctx context.Context, authorID int64, title, description string, categoryID int64, closingDate time.Time) (int64, error) {
	category, err := svc.categoryByID(ctx, categoryID)
	if err != nil {
		return 0, err
	}
	if category == nil {
		return 0, ErrCategoryNotFound
	}

	now := time.Now()
	if !closingDate.After(now) {
		return 0, ErrClosingDateInPast
	}

	petitionID, err := svc.writer.Save(ctx, title, description, categoryID, authorID, now, closingDate)
	if err != nil {
		logger.Log.Errorw("failed to save petition", "err", err)
		return 0, err
	}
	return petitionID, nil
}

// UpdatePetitionParams carries the optional fields of a petition update.
// Nil fields keep their current values.
type UpdatePetitionParams struct {
	Title       *string
	Description *string
	CategoryID  *int64
	ClosingDate *time.Time
}

// Update merges the supplied fields over the stored petition. Only the
// author may update; a supplied closing date must be in the future.
func (svc *PetitionService) Update(ctx context.Context, userID, petitionID int64, params UpdatePetitionParams) error {
	petition, err := svc.reader.GetByID(ctx, petitionID)
	if err != nil {
		logger.Log.Errorw("failed to get petition", "err", err)
		return err
	}
	if petition == nil {
		return ErrPetitionNotFound
	}

	if params.ClosingDate != nil && !params.ClosingDate.After(time.Now()) {
		return ErrClosingDateInPast
	}

	title := petition.Title
	if params.Title != nil {
		title = *params.Title
	}
	description := petition.Description
	if params.Description != nil {
		description = *params.Description
	}
	categoryID := petition.CategoryID
	if params.CategoryID != nil {
		categoryID = *params.CategoryID
	}
	closingDate := petition.ClosingDate
	if params.ClosingDate != nil {
		closingDate = *params.ClosingDate
	}

	category, err := svc.categoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if petition.AuthorID != userID {
		return ErrNotAuthor
	}

	if err := svc.writer.Update(ctx, petitionID, title, description, categoryID, closingDate); err != nil {
		logger.Log.Errorw("failed to update petition", "err", err)
		return err
	}
	return nil
}

// Delete removes a petition. Only the author may delete.
func (svc *PetitionService) Delete(ctx context.Context, userID, petitionID int64) error {
	petition, err := svc.reader.GetByID(ctx, petitionID)
	if err != nil {
		logger.Log.Errorw("failed to get petition", "err", err)
		return err
	}
	if petition == nil {
		return ErrPetitionNotFound
	}
	if petition.AuthorID != userID {
		return ErrNotAuthor
	}

	if err := svc.writer.Delete(ctx, petitionID); err != nil {
		logger.Log.Errorw("failed to delete petition", "err", err)
		return err
	}
	return nil
}
