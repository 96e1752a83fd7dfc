package models

// CategoryDB represents a category row in the database
type CategoryDB struct {
	CategoryID int64  `json:"categoryId" db:"id"` // Primary key
	Name       string `json:"name" db:"name"`     // Category name
}
