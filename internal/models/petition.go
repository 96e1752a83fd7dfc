package models

import "time"

// PetitionDB represents a petition row joined with its author, category
// and signature count.
type PetitionDB struct {
	PetitionID     int64     `db:"id"`              // Primary key
	Title          string    `db:"title"`           // Petition title
	Description    string    `db:"description"`     // Petition description
	CategoryID     int64     `db:"category_id"`     // Category foreign key
	Category       string    `db:"category"`        // Category name (joined)
	AuthorID       int64     `db:"author_id"`       // Author foreign key
	AuthorName     string    `db:"author_name"`     // Author name (joined)
	AuthorCity     *string   `db:"author_city"`     // Author city (joined)
	AuthorCountry  *string   `db:"author_country"`  // Author country (joined)
	SignatureCount int64     `db:"signature_count"` // Number of signatures (aggregated)
	CreatedDate    time.Time `db:"created_date"`    // When the petition was created
	ClosingDate    time.Time `db:"closing_date"`    // After this instant the petition is closed
}

// Open reports whether the petition still accepts signatures at instant now.
func (p *PetitionDB) Open(now time.Time) bool {
	return p.ClosingDate.After(now)
}
