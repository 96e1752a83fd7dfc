package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
)

// SignatureReadRepository provides read-only access to signatures.
type SignatureReadRepository struct {
	db *sqlx.DB
}

func NewSignatureReadRepository(db *sqlx.DB) *SignatureReadRepository {
	return &SignatureReadRepository{db: db}
}

// ListByPetition returns the signatures of a petition joined with the
// signatories' profiles, oldest first.
func (r *SignatureReadRepository) ListByPetition(ctx context.Context, petitionID int64) ([]models.SignatureDB, error) {
	const query = `
		SELECT s.signatory_id, s.petition_id, u.name, u.city, u.country, s.signed_date
		FROM signatures s
		JOIN users u ON u.id = s.signatory_id
		WHERE s.petition_id = $1
		ORDER BY s.signed_date
	`

	var signatures []models.SignatureDB
	err := sqlx.SelectContext(ctx, exec(ctx, r.db), &signatures, query, petitionID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{petitionID},
		"rows", len(signatures),
		"error", err,
	)

	return signatures, err
}

// Exists reports whether the given user has signed the given petition.
func (r *SignatureReadRepository) Exists(ctx context.Context, signatoryID, petitionID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM signatures
			WHERE signatory_id = $1 AND petition_id = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, exec(ctx, r.db), &exists, query, signatoryID, petitionID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{signatoryID, petitionID},
		"error", err,
	)

	return exists, err
}

// SignatureWriteRepository provides write access to signatures.
type SignatureWriteRepository struct {
	db *sqlx.DB
}

func NewSignatureWriteRepository(db *sqlx.DB) *SignatureWriteRepository {
	return &SignatureWriteRepository{db: db}
}

// Save inserts a signature. The composite primary key turns a concurrent
// double-sign into ErrDuplicate instead of a second row.
func (r *SignatureWriteRepository) Save(ctx context.Context, signatoryID, petitionID int64, signedDate time.Time) error {
	const query = `
		INSERT INTO signatures (signatory_id, petition_id, signed_date)
		VALUES ($1, $2, $3)
	`
	args := []any{signatoryID, petitionID, signedDate}

	_, err := exec(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// Delete removes a signature.
func (r *SignatureWriteRepository) Delete(ctx context.Context, signatoryID, petitionID int64) error {
	const query = `
		DELETE FROM signatures
		WHERE signatory_id = $1 AND petition_id = $2
	`

	_, err := exec(ctx, r.db).ExecContext(ctx, query, signatoryID, petitionID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{signatoryID, petitionID},
		"error", err,
	)

	return err
}
