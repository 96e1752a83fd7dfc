package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
)

// CategoryReadRepository provides read-only access to the static category
// reference data.
type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// List returns all categories ordered by id.
func (r *CategoryReadRepository) List(ctx context.Context) ([]models.CategoryDB, error) {
	const query = `
		SELECT id, name
		FROM categories
		ORDER BY id
	`

	var categories []models.CategoryDB
	err := sqlx.SelectContext(ctx, exec(ctx, r.db), &categories, query)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	return categories, err
}

const categoryCacheKey = "categories"

// CategoryCacheRepository caches the category list in Redis. Categories are
// read-only reference data, so a TTL is the only invalidation needed.
type CategoryCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewCategoryCacheRepository(client *redis.Client, expiration time.Duration) *CategoryCacheRepository {
	return &CategoryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached category list, or nil on a cache miss.
func (r *CategoryCacheRepository) Get(ctx context.Context) ([]models.CategoryDB, error) {
	val, err := r.client.Get(ctx, categoryCacheKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var categories []models.CategoryDB
	if err := json.Unmarshal([]byte(val), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Set caches the category list with the configured expiration.
func (r *CategoryCacheRepository) Set(ctx context.Context, categories []models.CategoryDB) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, categoryCacheKey, data, r.exp).Err()

	logger.Log.Debugw("cache set",
		"key", categoryCacheKey,
		"count", len(categories),
		"error", err,
	)

	return err
}
