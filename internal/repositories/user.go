package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
)

// UserReadRepository provides read-only access to user rows.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash, city, country, auth_token, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, userID)
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash, city, country, auth_token, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.getOne(ctx, query, email)
}

// GetByToken returns the user whose stored auth token equals the given
// token, or nil when no such user exists.
func (r *UserReadRepository) GetByToken(ctx context.Context, authToken string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash, city, country, auth_token, created_at, updated_at
		FROM users
		WHERE auth_token = $1
	`
	return r.getOne(ctx, query, authToken)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db), &user, query, arg)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository provides write access to user rows.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the generated id. A unique-constraint
// hit on the email column is reported as ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, passwordHash string, city, country *string) (int64, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, city, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	args := []any{name, email, passwordHash, city, country}

	var id int64
	err := sqlx.GetContext(ctx, exec(ctx, r.db), &id, query, args...)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{name, email, city, country},
		"error", err,
	)

	if isDuplicate(err) {
		return 0, ErrDuplicate
	}
	return id, err
}

// Update overwrites the mutable profile fields of an existing user.
// A unique-constraint hit on the email column is reported as ErrDuplicate.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, city = $4, country = $5, updated_at = NOW()
		WHERE id = $6
	`
	args := []any{user.Name, user.Email, user.PasswordHash, user.City, user.Country, user.UserID}

	_, err := exec(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{user.Name, user.Email, user.City, user.Country, user.UserID},
		"error", err,
	)

	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// SetToken stores the user's current session token. A nil token logs the
// user out.
func (r *UserWriteRepository) SetToken(ctx context.Context, userID int64, authToken *string) error {
	const query = `
		UPDATE users
		SET auth_token = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := exec(ctx, r.db).ExecContext(ctx, query, authToken, userID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}
