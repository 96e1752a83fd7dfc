package models

import "time"

// SignatureDB represents a signature row joined with the signatory's profile.
type SignatureDB struct {
	SignatoryID int64     `json:"signatoryId" db:"signatory_id"` // Signing user
	PetitionID  int64     `json:"-" db:"petition_id"`            // Signed petition
	Name        string    `json:"name" db:"name"`                // Signatory name (joined)
	City        *string   `json:"city" db:"city"`                // Signatory city (joined)
	Country     *string   `json:"country" db:"country"`          // Signatory country (joined)
	SignedDate  time.Time `json:"signedDate" db:"signed_date"`   // When the signature was created
}
