package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
)

const petitionColumns = `
	p.id, p.title, p.description, p.category_id, c.name AS category,
	p.author_id, u.name AS author_name, u.city AS author_city, u.country AS author_country,
	COUNT(s.signatory_id) AS signature_count,
	p.created_date, p.closing_date
`

// PetitionReadRepository provides read-only access to petitions, joined
// with author, category and signature count.
type PetitionReadRepository struct {
	db *sqlx.DB
}

func NewPetitionReadRepository(db *sqlx.DB) *PetitionReadRepository {
	return &PetitionReadRepository{db: db}
}

// List returns all petitions. Sorting, filtering and pagination happen in
// the service layer.
func (r *PetitionReadRepository) List(ctx context.Context) ([]models.PetitionDB, error) {
	const query = `
		SELECT ` + petitionColumns + `
		FROM petitions p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.author_id
		LEFT JOIN signatures s ON s.petition_id = p.id
		GROUP BY p.id, c.name, u.name, u.city, u.country
	`

	var petitions []models.PetitionDB
	err := sqlx.SelectContext(ctx, exec(ctx, r.db), &petitions, query)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(petitions),
		"error", err,
	)

	return petitions, err
}

// GetByID returns the petition with the given id, or nil when absent.
func (r *PetitionReadRepository) GetByID(ctx context.Context, petitionID int64) (*models.PetitionDB, error) {
	const query = `
		SELECT ` + petitionColumns + `
		FROM petitions p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.author_id
		LEFT JOIN signatures s ON s.petition_id = p.id
		WHERE p.id = $1
		GROUP BY p.id, c.name, u.name, u.city, u.country
	`

	var petition models.PetitionDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db), &petition, query, petitionID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{petitionID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &petition, nil
}

// PetitionWriteRepository provides write access to petition rows.
type PetitionWriteRepository struct {
	db *sqlx.DB
}

func NewPetitionWriteRepository(db *sqlx.DB) *PetitionWriteRepository {
	return &PetitionWriteRepository{db: db}
}

// Save inserts a new petition and returns the generated id.
func (r *PetitionWriteRepository) Save(ctx context.Context, title, description string, categoryID, authorID int64, createdDate, closingDate time.Time) (int64, error) {
	const query = `
		INSERT INTO petitions (title, description, category_id, author_id, created_date, closing_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	args := []any{title, description, categoryID, authorID, createdDate, closingDate}

	var id int64
	err := sqlx.GetContext(ctx, exec(ctx, r.db), &id, query, args...)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return id, err
}

// Update overwrites the mutable fields of an existing petition.
func (r *PetitionWriteRepository) Update(ctx context.Context, petitionID int64, title, description string, categoryID int64, closingDate time.Time) error {
	const query = `
		UPDATE petitions
		SET title = $1, description = $2, category_id = $3, closing_date = $4
		WHERE id = $5
	`
	args := []any{title, description, categoryID, closingDate, petitionID}

	_, err := exec(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes a petition. Signatures go with it via ON DELETE CASCADE.
func (r *PetitionWriteRepository) Delete(ctx context.Context, petitionID int64) error {
	const query = `
		DELETE FROM petitions
		WHERE id = $1
	`

	_, err := exec(ctx, r.db).ExecContext(ctx, query, petitionID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{petitionID},
		"error", err,
	)

	return err
}
