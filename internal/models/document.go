package models

import "time"

// Document is one persisted JSON blob per user and name. The tracker keeps a
// small fixed set of documents per account: "entries", "profile",
// "medications", "diagnoses".
type Document struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;uniqueIndex:uidx_documents_user_name"`
	Name      string `gorm:"not null;uniqueIndex:uidx_documents_user_name"`
	Value     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	DocumentEntries     = "entries"
	DocumentProfile     = "profile"
	DocumentMedications = "medications"
	DocumentDiagnoses   = "diagnoses"
)
