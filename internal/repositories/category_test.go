package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"petitions-backend/internal/models"
)

func TestCategoryReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	_, err := db.Exec("INSERT INTO categories (name) VALUES ('Environment'), ('Animal Rights'), ('Education')")
	assert.NoError(t, err)

	categories, err := NewCategoryReadRepository(db).List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, categories, 3)

	// Ordered by id, i.e. insertion order
	assert.Equal(t, "Environment", categories[0].Name)
	assert.Equal(t, "Animal Rights", categories[1].Name)
	assert.Equal(t, "Education", categories[2].Name)
}

func TestCategoryCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewCategoryCacheRepository(rdb, 2*time.Second)

	t.Run("Miss returns nil without error", func(t *testing.T) {
		categories, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, categories)
	})

	t.Run("Set and Get", func(t *testing.T) {
		want := []models.CategoryDB{
			{CategoryID: 1, Name: "Environment"},
			{CategoryID: 2, Name: "Animal Rights"},
		}

		err := repo.Set(ctx, want)
		assert.NoError(t, err)

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		err := repo.Set(ctx, []models.CategoryDB{{CategoryID: 3, Name: "Education"}})
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		categories, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, categories)
	})
}
